package user

type LoginInput struct {
	Username string `form:"username" json:"username" binding:"required" example:"admin"`
	Password string `form:"password" json:"password" binding:"required" example:"password123"`
}

type UserDTO struct {
	ID       uint    `json:"id" example:"1"`
	Username string  `json:"username" example:"admin"`
	Email    *string `json:"email" example:"admin@example.com"`
	IsAdmin  bool    `json:"is_admin"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}
