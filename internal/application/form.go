package application

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultTitleFormat  = "{dateCreated}"
	DefaultSubmitButton = "Submit"
)

var ErrHandleTaken = errors.New("handle already taken")

var handlePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Field handles that would shadow submission attributes or anti-spam inputs.
var reservedHandles = map[string]bool{
	export.AttrID:            true,
	export.AttrTitle:         true,
	export.AttrDateCreated:   true,
	export.AttrDateUpdated:   true,
	export.AttrSubmittedFrom: true,
	"handle":                 true,
}

type FormService struct {
	Repos   *repository.Repos
	exports *ExportService
}

func NewFormService(repos *repository.Repos, exports *ExportService) *FormService {
	return &FormService{
		Repos:   repos,
		exports: exports,
	}
}

func (s *FormService) List(ctx context.Context) ([]form.Form, error) {
	return s.Repos.Form.List(ctx, nil)
}

func (s *FormService) ListByGroup(ctx context.Context, groupID uint) ([]form.Form, error) {
	return s.Repos.Form.List(ctx, &groupID)
}

// Get returns the form with its field layout.
func (s *FormService) Get(ctx context.Context, id uint) (*form.Form, error) {
	f, err := s.Repos.Form.FindWithFields(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}
	return f, nil
}

func (s *FormService) GetByHandle(ctx context.Context, handle string) (*form.Form, error) {
	f, err := s.Repos.Form.FindByHandle(ctx, handle)
	if err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}
	return f, nil
}

func (s *FormService) Create(ctx context.Context, input form.CreateFormDTO) (*form.Form, error) {
	if err := s.checkHandle(ctx, input.Handle, 0); err != nil {
		return nil, err
	}
	fields, err := buildFields(input.Fields)
	if err != nil {
		return nil, err
	}
	if err := s.checkGroup(ctx, input.GroupID); err != nil {
		return nil, err
	}

	f := form.Form{
		Name:              strings.TrimSpace(input.Name),
		Handle:            input.Handle,
		GroupID:           input.GroupID,
		TitleFormat:       input.TitleFormat,
		SubmitButton:      input.SubmitButton,
		SubmissionEnabled: true,
		AfterSubmit:       input.AfterSubmit,
		AfterSubmitText:   input.AfterSubmitText,
		RedirectURL:       input.RedirectURL,
	}
	if f.TitleFormat == "" {
		f.TitleFormat = DefaultTitleFormat
	}
	if f.SubmitButton == "" {
		f.SubmitButton = DefaultSubmitButton
	}
	if f.AfterSubmit == "" {
		f.AfterSubmit = form.AfterSubmitMessage
	}
	if input.SubmissionEnabled != nil {
		f.SubmissionEnabled = *input.SubmissionEnabled
	}
	if input.Notification != nil {
		f.Notification = *input.Notification
	}
	if input.Confirmation != nil {
		f.Confirmation = *input.Confirmation
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Form.Create(ctx, &f); err != nil {
			return err
		}
		return r.Form.ReplaceFields(ctx, f.ID, fields)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, f.ID)
}

func (s *FormService) Update(ctx context.Context, id uint, input form.UpdateFormDTO) (*form.Form, error) {
	f, err := s.Repos.Form.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}

	if input.Handle != nil && *input.Handle != f.Handle {
		if err := s.checkHandle(ctx, *input.Handle, f.ID); err != nil {
			return nil, err
		}
		f.Handle = *input.Handle
	}
	if input.Name != nil {
		f.Name = strings.TrimSpace(*input.Name)
	}
	if input.GroupID != nil {
		if err := s.checkGroup(ctx, input.GroupID); err != nil {
			return nil, err
		}
		f.GroupID = input.GroupID
	}
	if input.TitleFormat != nil {
		f.TitleFormat = *input.TitleFormat
	}
	if input.SubmitButton != nil {
		f.SubmitButton = *input.SubmitButton
	}
	if input.SubmissionEnabled != nil {
		f.SubmissionEnabled = *input.SubmissionEnabled
	}
	if input.AfterSubmit != nil {
		f.AfterSubmit = *input.AfterSubmit
	}
	if input.AfterSubmitText != nil {
		f.AfterSubmitText = *input.AfterSubmitText
	}
	if input.RedirectURL != nil {
		f.RedirectURL = *input.RedirectURL
	}
	if input.Notification != nil {
		f.Notification = *input.Notification
	}
	if input.Confirmation != nil {
		f.Confirmation = *input.Confirmation
	}

	var fields []field.Field
	if input.Fields != nil {
		if fields, err = buildFields(input.Fields); err != nil {
			return nil, err
		}
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Form.Update(ctx, f); err != nil {
			return err
		}
		if input.Fields == nil {
			return nil
		}
		return r.Form.ReplaceFields(ctx, f.ID, fields)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, f.ID)
}

// ReplaceFields swaps the field layout of a form. Fields keep their ids when
// the handle is unchanged so export mappings and criteria stay valid.
func (s *FormService) ReplaceFields(ctx context.Context, id uint, inputs []field.FieldInput) (*form.Form, error) {
	if _, err := s.Repos.Form.FindByID(ctx, id); err != nil {
		return nil, notFound(err, ErrFormNotFound)
	}
	fields, err := buildFields(inputs)
	if err != nil {
		return nil, err
	}
	if err := s.Repos.Form.ReplaceFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the form with its submissions and exports, then the export files.
func (s *FormService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repos.Form.FindByID(ctx, id); err != nil {
		return notFound(err, ErrFormNotFound)
	}
	exps, err := s.Repos.Export.List(ctx, &id)
	if err != nil {
		return err
	}
	if err := s.Repos.Form.Delete(ctx, id); err != nil {
		return err
	}
	if s.exports != nil {
		for i := range exps {
			s.exports.removeArtifacts(ctx, exps[i].ID, exps[i].File)
		}
	}
	return nil
}

func (s *FormService) checkHandle(ctx context.Context, handle string, self uint) error {
	if !handlePattern.MatchString(handle) {
		return invalid("handle %q must start with a letter and contain only letters, digits and underscores", handle)
	}
	existing, err := s.Repos.Form.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return ErrHandleTaken
	}
	return nil
}

func (s *FormService) checkGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.Repos.Group.FindByID(ctx, *groupID); err != nil {
		return notFound(err, ErrGroupNotFound)
	}
	return nil
}

func buildFields(inputs []field.FieldInput) ([]field.Field, error) {
	seen := make(map[string]bool, len(inputs))
	fields := make([]field.Field, 0, len(inputs))
	for i, in := range inputs {
		if !handlePattern.MatchString(in.Handle) {
			return nil, invalid("field %d: invalid handle %q", i+1, in.Handle)
		}
		if reservedHandles[in.Handle] || strings.HasPrefix(in.Handle, "__") {
			return nil, invalid("field handle %q is reserved", in.Handle)
		}
		if seen[in.Handle] {
			return nil, invalid("duplicate field handle %q", in.Handle)
		}
		seen[in.Handle] = true
		if !field.ValidType(in.Type) {
			return nil, invalid("field %q: unknown type %q", in.Handle, in.Type)
		}
		if err := checkFieldSettings(in); err != nil {
			return nil, err
		}
		fields = append(fields, field.Field{
			Handle:   in.Handle,
			Name:     strings.TrimSpace(in.Name),
			Type:     in.Type,
			Required: in.Required,
			Settings: datatypes.NewJSONType(in.Settings),
		})
	}
	return fields, nil
}

func checkFieldSettings(in field.FieldInput) error {
	switch field.KindOf(in.Type) {
	case field.KindSingleChoice, field.KindMultiChoice:
		if len(in.Settings.Options) == 0 {
			return invalid("field %q needs at least one option", in.Handle)
		}
	case field.KindRepeating:
		if len(in.Settings.BlockTypes) == 0 {
			return invalid("field %q needs at least one block type", in.Handle)
		}
		for _, bt := range in.Settings.BlockTypes {
			if bt.Handle == "" || len(bt.Fields) == 0 {
				return invalid("field %q: block types need a handle and fields", in.Handle)
			}
		}
	case field.KindTable:
		if len(in.Settings.Columns) == 0 {
			return invalid("field %q needs at least one column", in.Handle)
		}
	}
	return nil
}
