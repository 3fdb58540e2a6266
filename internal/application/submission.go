package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/linskybing/forms-go/internal/antispam"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/internal/events"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	DefaultAfterSubmitText = "Thanks for your submission."
	RecaptchaParam         = "g-recaptcha-response"
)

type RecaptchaVerifier interface {
	Verify(ctx context.Context, secret, response, remoteIP string) (bool, error)
}

// SubmitInput is a public form post.
type SubmitInput struct {
	SessionID string
	Host      string
	UserAgent string
	IPAddress string
	Referrer  string
	Values    map[string]any
}

// SubmitResult is the answer to a public form post. A submit rejected as
// spam carries neither errors nor a hint about the failed check.
type SubmitResult struct {
	Success         bool              `json:"success"`
	SubmissionID    uint              `json:"submission_id,omitempty"`
	AfterSubmitText string            `json:"after_submit_text,omitempty"`
	Redirect        string            `json:"redirect,omitempty"`
	Errors          map[string]string `json:"errors,omitempty"`
}

// SaveHook observes a submission around its save. A before-save hook
// returning an error stops the save.
type SaveHook func(ctx context.Context, f *form.Form, s *submission.Submission, isNew bool) error

type SubmissionService struct {
	Repos     *repository.Repos
	settings  *SettingsService
	checker   *antispam.Checker
	recaptcha RecaptchaVerifier
	publisher events.Publisher
	log       *zap.Logger
	now       func() time.Time

	mu         sync.RWMutex
	beforeSave []SaveHook
	afterSave  []SaveHook
}

func NewSubmissionService(repos *repository.Repos, settings *SettingsService, checker *antispam.Checker, recaptcha RecaptchaVerifier, publisher events.Publisher, log *zap.Logger) *SubmissionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &SubmissionService{
		Repos:     repos,
		settings:  settings,
		checker:   checker,
		recaptcha: recaptcha,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
	s.OnAfterSave(s.publishSaved)
	return s
}

func (s *SubmissionService) OnBeforeSave(h SaveHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeSave = append(s.beforeSave, h)
}

func (s *SubmissionService) OnAfterSave(h SaveHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.afterSave = append(s.afterSave, h)
}

func (s *SubmissionService) hooks(after bool) []SaveHook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if after {
		return append([]SaveHook(nil), s.afterSave...)
	}
	return append([]SaveHook(nil), s.beforeSave...)
}

func (s *SubmissionService) formatter(ctx context.Context) export.Formatter {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return export.NewFormatter("", "")
	}
	return export.NewFormatter(st.BooleanYes, st.BooleanNo)
}

// Submit runs the public submit flow: anti-spam checks, the optional
// reCAPTCHA, field validation, then the save.
func (s *SubmissionService) Submit(ctx context.Context, handle string, in SubmitInput) (*SubmitResult, error) {
	f, err := s.Repos.Form.FindByHandle(ctx, handle)
	if err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}
	req := antispam.Request{
		SessionID:  in.SessionID,
		FormHandle: f.Handle,
		Host:       in.Host,
		UserAgent:  in.UserAgent,
	}

	ok, err := s.checker.Verify(ctx, antispam.Attempt{Request: req, Params: stringParams(in.Values)})
	if err != nil {
		return nil, err
	}
	if !ok {
		s.publish(ctx, events.Event{Type: events.TypeSubmissionSpam, FormID: f.ID})
		return &SubmitResult{Success: false, Redirect: redirectURL(f, nil, false)}, nil
	}
	if err := s.checker.MarkNoSpam(ctx, req); err != nil && !errors.Is(err, antispam.ErrNoSession) {
		return nil, err
	}

	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if st.GoogleRecaptchaEnabled && s.recaptcha != nil {
		token, _ := in.Values[RecaptchaParam].(string)
		verified, err := s.recaptcha.Verify(ctx, st.GoogleRecaptchaSecretKey, token, in.IPAddress)
		if err != nil {
			s.log.Warn("recaptcha verification failed", zap.String("form", f.Handle), zap.Error(err))
		}
		if !verified {
			return &SubmitResult{Errors: map[string]string{"spamFree": "reCAPTCHA was not verified."}}, nil
		}
	}

	content, problems := extractContent(f, in.Values)
	if len(problems) > 0 {
		return &SubmitResult{Errors: problems}, nil
	}

	result := &SubmitResult{Success: true, AfterSubmitText: f.AfterSubmitText}
	if result.AfterSubmitText == "" {
		result.AfterSubmitText = DefaultAfterSubmitText
	}
	if !f.SubmissionEnabled {
		result.Redirect = redirectURL(f, nil, true)
		return result, nil
	}

	sub := &submission.Submission{
		FormID:        f.ID,
		Content:       content,
		IPAddress:     in.IPAddress,
		UserAgent:     in.UserAgent,
		SubmittedFrom: in.Referrer,
	}
	if err := s.save(ctx, f, sub, true); err != nil {
		return nil, err
	}
	if err := s.checker.ClearNoSpam(ctx, req); err != nil {
		s.log.Warn("spam-free mark not cleared", zap.String("form", f.Handle), zap.Error(err))
	}

	result.SubmissionID = sub.ID
	result.Redirect = redirectURL(f, sub, true)
	return result, nil
}

// Create stores a submission entered in the control panel.
func (s *SubmissionService) Create(ctx context.Context, formID uint, input submission.SaveSubmissionDTO, authorID *uint) (*submission.Submission, error) {
	f, err := s.Repos.Form.FindWithFields(ctx, formID)
	if err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}
	content, problems := extractContent(f, input.Content)
	if len(problems) > 0 {
		return nil, problemsError(problems)
	}
	sub := &submission.Submission{
		FormID:   f.ID,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.save(ctx, f, sub, true); err != nil {
		return nil, err
	}
	return sub, nil
}

// Update replaces the field values of a submission.
func (s *SubmissionService) Update(ctx context.Context, id uint, input submission.SaveSubmissionDTO) (*submission.Submission, error) {
	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f, err := s.Repos.Form.FindWithFields(ctx, sub.FormID)
	if err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}
	content, problems := extractContent(f, input.Content)
	if len(problems) > 0 {
		return nil, problemsError(problems)
	}
	sub.Content = content
	if err := s.save(ctx, f, sub, false); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) save(ctx context.Context, f *form.Form, sub *submission.Submission, isNew bool) error {
	for _, h := range s.hooks(false) {
		if err := h(ctx, f, sub, isNew); err != nil {
			return err
		}
	}
	now := s.now()
	if isNew {
		sub.CreatedAt = now
	}
	sub.UpdatedAt = now
	sub.Title = Title(f, sub, s.formatter(ctx))

	var err error
	if isNew {
		err = s.Repos.Submission.Create(ctx, sub)
	} else {
		err = s.Repos.Submission.Update(ctx, sub)
	}
	if err != nil {
		return err
	}
	for _, h := range s.hooks(true) {
		if err := h(ctx, f, sub, isNew); err != nil {
			s.log.Warn("after-save hook failed", zap.Uint("submission_id", sub.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *SubmissionService) publishSaved(ctx context.Context, f *form.Form, sub *submission.Submission, isNew bool) error {
	return s.publisher.Publish(ctx, events.Event{
		Type:     events.TypeSubmissionSaved,
		FormID:   f.ID,
		EntityID: sub.ID,
		Data:     map[string]any{"title": sub.Title, "new": isNew},
	})
}

func (s *SubmissionService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.Warn("event not published", zap.String("type", e.Type), zap.Error(err))
	}
}

func (s *SubmissionService) Get(ctx context.Context, id uint) (*submission.Submission, error) {
	sub, err := s.Repos.Submission.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrSubmissionNotFound)
	}
	return sub, nil
}

func (s *SubmissionService) ListByForm(ctx context.Context, formID uint, limit, offset int) ([]submission.Submission, int64, error) {
	if _, err := s.Repos.Form.FindByID(ctx, formID); err != nil {
		return nil, 0, notFound(err, ErrFormNotFound)
	}
	return s.Repos.Submission.ListByForm(ctx, formID, limit, offset)
}

// Recent lists the newest submissions across all forms.
func (s *SubmissionService) Recent(ctx context.Context, limit int) ([]submission.Submission, error) {
	return s.Repos.Submission.Recent(ctx, limit)
}

func (s *SubmissionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repos.Submission.Delete(ctx, id)
}

// CleanUp removes submissions older than the configured interval. It does
// nothing when clean-up is switched off.
func (s *SubmissionService) CleanUp(ctx context.Context) (int64, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	if !st.CleanUpSubmissions {
		return 0, nil
	}
	cutoff, err := st.CleanUpCutoff(s.now())
	if err != nil {
		return 0, err
	}
	n, err := s.Repos.Submission.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.publish(ctx, events.Event{
			Type: events.TypeSubmissionsPurge,
			Data: map[string]any{"deleted": n, "cutoff": cutoff},
		})
	}
	return n, nil
}

// stringParams exposes the posted scalar values to the anti-spam checks.
func stringParams(values map[string]any) map[string]string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		switch t := v.(type) {
		case string:
			params[k] = t
		case nil:
		default:
			params[k] = fmt.Sprint(t)
		}
	}
	return params
}

// extractContent keeps the values of the form's own fields and checks
// required fields and choice options. Problems are keyed by field handle.
func extractContent(f *form.Form, values map[string]any) (datatypes.JSONMap, map[string]string) {
	content := datatypes.JSONMap{}
	problems := map[string]string{}
	for _, fd := range f.Fields {
		v, ok := values[fd.Handle]
		if !ok || blank(v) {
			if fd.Required {
				problems[fd.Handle] = fmt.Sprintf("%s cannot be blank.", fd.Name)
			}
			continue
		}
		if fd.Kind() == field.KindSingleChoice && !validOption(fd, v) {
			problems[fd.Handle] = fmt.Sprintf("%s is invalid.", fd.Name)
			continue
		}
		content[fd.Handle] = v
	}
	return content, problems
}

func blank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

func validOption(fd field.Field, v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, o := range fd.Settings.Data().Options {
		if o.Value == s {
			return true
		}
	}
	return false
}

func problemsError(problems map[string]string) error {
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, problems[k])
	}
	return &ValidationError{Msg: strings.Join(msgs, " ")}
}

// redirectURL renders the form's redirect target. Without one the caller
// stays on the page and the query reports the outcome.
func redirectURL(f *form.Form, sub *submission.Submission, submitted bool) string {
	if f.RedirectURL == "" || f.AfterSubmit == form.AfterSubmitMessage {
		if submitted {
			return "?submitted=" + f.Handle
		}
		return "?submitted=0"
	}
	if sub == nil {
		sub = &submission.Submission{}
	}
	return render(f.RedirectURL, submissionVars(f, sub, export.NewFormatter("", "")))
}
