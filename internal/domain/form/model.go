package form

import (
	"time"

	"github.com/linskybing/forms-go/internal/domain/field"
)

// AfterSubmit values.
const (
	AfterSubmitMessage  = "message"
	AfterSubmitRedirect = "redirect"
	AfterSubmitReload   = "reload"
)

type Form struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	GroupID           *uint  `json:"group_id"`
	Name              string `gorm:"size:255;not null" json:"name"`
	Handle            string `gorm:"size:64;not null;uniqueIndex" json:"handle"`
	TitleFormat       string `gorm:"size:255" json:"title_format"`
	SubmitButton      string `gorm:"size:255" json:"submit_button"`
	SubmissionEnabled bool   `gorm:"default:true" json:"submission_enabled"`
	AfterSubmit       string `gorm:"size:32" json:"after_submit"`
	AfterSubmitText   string `gorm:"type:text" json:"after_submit_text"`
	RedirectURL       string `gorm:"size:255" json:"redirect_url"`
	DisplayTabTitles  bool   `json:"display_tab_titles"`
	SendCopy          bool   `json:"send_copy"`
	SendCopyTo        string `gorm:"size:255" json:"send_copy_to"`

	Notification Notification `gorm:"embedded;embeddedPrefix:notification_" json:"notification"`
	Confirmation Confirmation `gorm:"embedded;embeddedPrefix:confirmation_" json:"confirmation"`

	Fields    []field.Field `gorm:"foreignKey:FormID" json:"fields,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (Form) TableName() string {
	return "forms"
}

// Notification is mailed to site staff after each submission.
type Notification struct {
	Enabled      bool   `json:"enabled"`
	Recipients   string `gorm:"type:text" json:"recipients"`
	Subject      string `gorm:"size:255" json:"subject"`
	SenderName   string `gorm:"size:255" json:"sender_name"`
	SenderEmail  string `gorm:"size:255" json:"sender_email"`
	ReplyToEmail string `gorm:"size:255" json:"reply_to_email"`
}

// Confirmation is mailed to the submitter, addressed via FieldHandle.
type Confirmation struct {
	Enabled     bool   `json:"enabled"`
	FieldHandle string `gorm:"size:64" json:"field_handle"`
	Subject     string `gorm:"size:255" json:"subject"`
	SenderName  string `gorm:"size:255" json:"sender_name"`
	SenderEmail string `gorm:"size:255" json:"sender_email"`
}

// Field returns the field with the given handle.
func (f *Form) Field(handle string) (field.Field, bool) {
	for _, fd := range f.Fields {
		if fd.Handle == handle {
			return fd, true
		}
	}
	return field.Field{}, false
}

// FieldByID returns the field with the given id.
func (f *Form) FieldByID(id uint) (field.Field, bool) {
	for _, fd := range f.Fields {
		if fd.ID == id {
			return fd, true
		}
	}
	return field.Field{}, false
}
