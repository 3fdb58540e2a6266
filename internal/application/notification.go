package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/mail"
)

const (
	DefaultNotificationSubject = "{formName} form was submitted"
	DefaultConfirmationSubject = "Thanks for your submission."
)

// Messages builds the staff notification and the submitter's confirmation
// for a saved submission. Subjects, senders and recipients are templates
// rendered against the submission. Invalid addresses are dropped and a
// message left without a recipient is not built.
func Messages(f *form.Form, sub *submission.Submission, bcc string, format export.Formatter) []mail.Message {
	vars := submissionVars(f, sub, format)
	body := messageBody(f, sub, format)

	var blind []string
	for _, a := range mail.SplitAddresses(bcc) {
		if a = render(a, vars); mail.Valid(a) {
			blind = append(blind, a)
		}
	}

	var out []mail.Message
	if n := f.Notification; n.Enabled {
		var to []string
		for _, a := range mail.SplitAddresses(render(n.Recipients, vars)) {
			if mail.Valid(a) {
				to = append(to, a)
			}
		}
		if len(to) > 0 {
			m := mail.Message{
				Kind:    mail.KindNotification,
				From:    mail.Address{Name: render(n.SenderName, vars), Email: render(n.SenderEmail, vars)},
				To:      to,
				Bcc:     blind,
				Subject: subject(n.Subject, DefaultNotificationSubject, vars),
				Body:    body,
			}
			if reply := strings.TrimSpace(render(n.ReplyToEmail, vars)); mail.Valid(reply) {
				m.ReplyTo = reply
			}
			out = append(out, m)
		}
	}

	if c := f.Confirmation; c.Enabled || f.SendCopy {
		handle := c.FieldHandle
		if handle == "" {
			handle = f.SendCopyTo
		}
		to := strings.TrimSpace(vars(handle))
		if handle != "" && mail.Valid(to) {
			from := mail.Address{Name: render(c.SenderName, vars), Email: render(c.SenderEmail, vars)}
			if from.Email == "" {
				from = mail.Address{Name: render(f.Notification.SenderName, vars), Email: render(f.Notification.SenderEmail, vars)}
			}
			out = append(out, mail.Message{
				Kind:    mail.KindConfirmation,
				From:    from,
				To:      []string{to},
				Bcc:     blind,
				Subject: subject(c.Subject, DefaultConfirmationSubject, vars),
				Body:    body,
			})
		}
	}

	for i := range out {
		out[i].FormID = f.ID
		out[i].SubmissionID = sub.ID
	}
	return out
}

func subject(tpl, fallback string, vars func(string) string) string {
	if strings.TrimSpace(tpl) == "" {
		tpl = fallback
	}
	return strings.TrimSpace(render(tpl, vars))
}

// messageBody lists every field as "Name: value" in form order.
func messageBody(f *form.Form, sub *submission.Submission, format export.Formatter) string {
	var b strings.Builder
	for _, fd := range f.Fields {
		v, _ := sub.Value(fd.Handle)
		fmt.Fprintf(&b, "%s: %s\n", fd.Name, format.Format(fd, v))
	}
	return b.String()
}

// WithMailer mails notifications after new front-end submissions.
// Submissions entered in the control panel carry an author and are skipped.
func (s *SubmissionService) WithMailer(m mail.Mailer) *SubmissionService {
	if m == nil {
		return s
	}
	s.OnAfterSave(func(ctx context.Context, f *form.Form, sub *submission.Submission, isNew bool) error {
		if !isNew || sub.AuthorID != nil {
			return nil
		}
		st, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		var errs []error
		for _, msg := range Messages(f, sub, st.BccEmailAddress, export.NewFormatter(st.BooleanYes, st.BooleanNo)) {
			if err := m.Send(ctx, msg); err != nil {
				errs = append(errs, fmt.Errorf("send %s: %w", msg.Kind, err))
			}
		}
		return errors.Join(errs...)
	})
	return s
}
