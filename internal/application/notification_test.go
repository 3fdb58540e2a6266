package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type captureMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *captureMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *captureMailer) messages() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}

func mailForm() *form.Form {
	f := contactForm()
	f.Fields = append(f.Fields, field.Field{ID: 3, FormID: 7, Handle: "email", Name: "Email", Type: field.TypeEmail, SortOrder: 3})
	f.Notification = form.Notification{
		Enabled:      true,
		Recipients:   "staff@example.test, not-an-address, {email}",
		Subject:      "New entry from {name}",
		SenderName:   "{formName} form",
		SenderEmail:  "noreply@example.test",
		ReplyToEmail: "{email}",
	}
	f.Confirmation = form.Confirmation{
		Enabled:     true,
		FieldHandle: "email",
		SenderName:  "Support",
		SenderEmail: "support@example.test",
	}
	return f
}

func mailSubmission() *submission.Submission {
	return &submission.Submission{
		ID:     41,
		FormID: 7,
		Content: datatypes.JSONMap{
			"name":  "Ann",
			"color": "red",
			"email": "ann@example.test",
		},
	}
}

func TestMessages_NotificationAndConfirmation(t *testing.T) {
	msgs := Messages(mailForm(), mailSubmission(), "audit@example.test, bogus", export.NewFormatter("Yes", "No"))
	require.Len(t, msgs, 2)

	n := msgs[0]
	assert.Equal(t, mail.KindNotification, n.Kind)
	assert.Equal(t, uint(7), n.FormID)
	assert.Equal(t, uint(41), n.SubmissionID)
	assert.Equal(t, []string{"staff@example.test", "ann@example.test"}, n.To)
	assert.Equal(t, "New entry from Ann", n.Subject)
	assert.Equal(t, mail.Address{Name: "Contact form", Email: "noreply@example.test"}, n.From)
	assert.Equal(t, "ann@example.test", n.ReplyTo)
	assert.Equal(t, []string{"audit@example.test"}, n.Bcc)
	assert.Equal(t, "Name: Ann\nColor: red\nEmail: ann@example.test\n", n.Body)

	c := msgs[1]
	assert.Equal(t, mail.KindConfirmation, c.Kind)
	assert.Equal(t, []string{"ann@example.test"}, c.To)
	assert.Equal(t, DefaultConfirmationSubject, c.Subject)
	assert.Equal(t, "support@example.test", c.From.Email)
	assert.Equal(t, []string{"audit@example.test"}, c.Bcc)
	assert.Equal(t, n.Body, c.Body)
}

func TestMessages_Defaults(t *testing.T) {
	f := mailForm()
	f.Notification.Subject = " "
	f.Notification.ReplyToEmail = "nobody"
	f.Confirmation.SenderEmail = ""

	msgs := Messages(f, mailSubmission(), "", export.NewFormatter("", ""))
	require.Len(t, msgs, 2)
	assert.Equal(t, "Contact form was submitted", msgs[0].Subject)
	assert.Empty(t, msgs[0].ReplyTo)
	assert.Empty(t, msgs[0].Bcc)
	assert.Equal(t, "noreply@example.test", msgs[1].From.Email)
}

func TestMessages_SkipsWithoutRecipients(t *testing.T) {
	f := mailForm()
	f.Notification.Recipients = "nobody"
	sub := mailSubmission()
	sub.Content["email"] = "not valid"

	assert.Empty(t, Messages(f, sub, "", export.NewFormatter("", "")))

	f.Notification.Enabled = false
	f.Confirmation.Enabled = false
	assert.Empty(t, Messages(f, mailSubmission(), "", export.NewFormatter("", "")))
}

func TestMessages_SendCopyTo(t *testing.T) {
	f := mailForm()
	f.Notification.Enabled = false
	f.Confirmation = form.Confirmation{}
	f.SendCopy = true
	f.SendCopyTo = "email"

	msgs := Messages(f, mailSubmission(), "", export.NewFormatter("", ""))
	require.Len(t, msgs, 1)
	assert.Equal(t, mail.KindConfirmation, msgs[0].Kind)
	assert.Equal(t, []string{"ann@example.test"}, msgs[0].To)
}

func TestSubmit_MailsAfterSave(t *testing.T) {
	fx := setupSubmissionService(t, map[string]string{
		"timeCheckEnabled":      "false",
		"duplicateCheckEnabled": "false",
		"originCheckEnabled":    "false",
		"bccEmailAddress":       "audit@example.test",
	})
	mailer := &captureMailer{}
	fx.svc.WithMailer(mailer)
	ctx := context.Background()

	fx.m.form.EXPECT().FindByHandle(ctx, "contact").Return(mailForm(), nil)
	fx.m.submission.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *submission.Submission) error {
		assert.Empty(t, mailer.messages())
		s.ID = 41
		return nil
	})

	res, err := fx.svc.Submit(ctx, "contact", submitInput(map[string]any{
		"name":  "Ann",
		"color": "red",
		"email": "ann@example.test",
	}))
	require.NoError(t, err)
	assert.True(t, res.Success)

	sent := mailer.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, uint(41), sent[0].SubmissionID)
	assert.Equal(t, []string{"audit@example.test"}, sent[1].Bcc)
}

func TestSubmit_MailFailureKeepsSubmission(t *testing.T) {
	fx := setupSubmissionService(t, honeypotOnly)
	mailer := &captureMailer{err: errors.New("broker down")}
	fx.svc.WithMailer(mailer)
	ctx := context.Background()

	fx.m.form.EXPECT().FindByHandle(ctx, "contact").Return(mailForm(), nil)
	fx.m.submission.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	res, err := fx.svc.Submit(ctx, "contact", submitInput(map[string]any{"name": "Ann", "email": "ann@example.test"}))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, mailer.messages(), 2)
}

func TestCreate_ControlPanelEntryIsNotMailed(t *testing.T) {
	fx := setupSubmissionService(t, honeypotOnly)
	mailer := &captureMailer{}
	fx.svc.WithMailer(mailer)
	ctx := context.Background()
	author := uint(3)

	fx.m.form.EXPECT().FindWithFields(ctx, uint(7)).Return(mailForm(), nil)
	fx.m.submission.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	_, err := fx.svc.Create(ctx, 7, submission.SaveSubmissionDTO{Content: map[string]any{"name": "Ann", "email": "ann@example.test"}}, &author)
	require.NoError(t, err)
	assert.Empty(t, mailer.messages())
}
