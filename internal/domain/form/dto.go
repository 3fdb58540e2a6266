package form

import "github.com/linskybing/forms-go/internal/domain/field"

type CreateFormDTO struct {
	Name              string             `json:"name" binding:"required,max=255"`
	Handle            string             `json:"handle" binding:"required,max=64"`
	GroupID           *uint              `json:"group_id"`
	TitleFormat       string             `json:"title_format"`
	SubmitButton      string             `json:"submit_button"`
	SubmissionEnabled *bool              `json:"submission_enabled"`
	AfterSubmit       string             `json:"after_submit" binding:"omitempty,oneof=message redirect reload"`
	AfterSubmitText   string             `json:"after_submit_text"`
	RedirectURL       string             `json:"redirect_url" binding:"omitempty,url"`
	Notification      *Notification      `json:"notification"`
	Confirmation      *Confirmation      `json:"confirmation"`
	Fields            []field.FieldInput `json:"fields" binding:"dive"`
}

type UpdateFormDTO struct {
	Name              *string            `json:"name" binding:"omitempty,max=255"`
	Handle            *string            `json:"handle" binding:"omitempty,max=64"`
	GroupID           *uint              `json:"group_id"`
	TitleFormat       *string            `json:"title_format"`
	SubmitButton      *string            `json:"submit_button"`
	SubmissionEnabled *bool              `json:"submission_enabled"`
	AfterSubmit       *string            `json:"after_submit" binding:"omitempty,oneof=message redirect reload"`
	AfterSubmitText   *string            `json:"after_submit_text"`
	RedirectURL       *string            `json:"redirect_url"`
	Notification      *Notification      `json:"notification"`
	Confirmation      *Confirmation      `json:"confirmation"`
	Fields            []field.FieldInput `json:"fields" binding:"omitempty,dive"`
}
