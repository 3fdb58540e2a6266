package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is wrapped by every lookup failure so handlers can answer 404.
var ErrNotFound = errors.New("not found")

var (
	ErrFormNotFound       = fmt.Errorf("form %w", ErrNotFound)
	ErrGroupNotFound      = fmt.Errorf("group %w", ErrNotFound)
	ErrSubmissionNotFound = fmt.Errorf("submission %w", ErrNotFound)
	ErrNoteNotFound       = fmt.Errorf("note %w", ErrNotFound)
	ErrExportNotFound     = fmt.Errorf("export %w", ErrNotFound)
	ErrJobNotFound        = fmt.Errorf("job %w", ErrNotFound)
)

// ValidationError carries a message safe to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// notFound maps gorm.ErrRecordNotFound to the given sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
