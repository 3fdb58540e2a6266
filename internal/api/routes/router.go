package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-go/docs"
	"github.com/linskybing/forms-go/internal/api/handlers"
	"github.com/linskybing/forms-go/internal/api/middleware"
	"github.com/linskybing/forms-go/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), h.User.AuthStatus)

	// --- public form endpoints, scoped to a visitor session ---
	public := r.Group("/public")
	public.Use(middleware.Session(config.SessionCookie))
	{
		public.GET("/forms/:handle", h.Public.RenderForm)
		public.POST("/forms/:handle/submit", h.Public.Submit)
	}

	// --- JWT-protected routes ---
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.Me)
		auth.PUT("/me/password", h.User.ChangePassword)
		auth.GET("/ws/exports/:id", middleware.Admin(), h.Export.StreamStatus)
	}

	cp := auth.Group("/")
	cp.Use(middleware.Admin())
	{
		groups := cp.Group("/groups")
		{
			groups.GET("", h.Group.ListGroups)
			groups.POST("", h.Group.CreateGroup)
			groups.PUT("/:id", h.Group.RenameGroup)
			groups.DELETE("/:id", h.Group.DeleteGroup)
		}

		forms := cp.Group("/forms")
		{
			forms.GET("", h.Form.ListForms)
			forms.POST("", h.Form.CreateForm)
			forms.GET("/:id", h.Form.GetForm)
			forms.PUT("/:id", h.Form.UpdateForm)
			forms.PUT("/:id/fields", h.Form.ReplaceFields)
			forms.DELETE("/:id", h.Form.DeleteForm)
			forms.GET("/:id/submissions", h.Submission.ListSubmissions)
			forms.POST("/:id/submissions", h.Submission.CreateSubmission)
			forms.POST("/:id/submissions/export", h.Submission.ExportSubmissions)
		}

		submissions := cp.Group("/submissions")
		{
			submissions.GET("/recent", h.Submission.RecentSubmissions)
			submissions.GET("/:id", h.Submission.GetSubmission)
			submissions.PUT("/:id", h.Submission.UpdateSubmission)
			submissions.DELETE("/:id", h.Submission.DeleteSubmission)
			submissions.GET("/:id/notes", h.Note.ListNotes)
			submissions.POST("/:id/notes", h.Note.AddNote)
		}
		cp.DELETE("/notes/:id", h.Note.DeleteNote)

		exports := cp.Group("/exports")
		{
			exports.GET("", h.Export.ListExports)
			exports.POST("", h.Export.SaveExport)
			exports.POST("/count", h.Export.CountSubmissions)
			exports.GET("/:id", h.Export.GetExport)
			exports.GET("/:id/status", h.Export.ExportStatus)
			exports.GET("/:id/download", h.Export.DownloadExport)
			exports.POST("/:id/restart", h.Export.RestartExport)
			exports.DELETE("/:id", h.Export.DeleteExport)
		}

		settings := cp.Group("/settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.UpdateSettings)
		}

		JobRoutes(cp, h.Job)
	}
}
