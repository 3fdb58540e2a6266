package application

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/linskybing/forms-go/internal/export"
)

var placeholder = regexp.MustCompile(`\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}`)

// render replaces {name} placeholders. Unknown names render empty.
func render(tpl string, lookup func(name string) string) string {
	return placeholder.ReplaceAllStringFunc(tpl, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		return lookup(name)
	})
}

// submissionVars resolves placeholders against a submission: its attributes,
// the form name and handle, then field values formatted like export cells.
func submissionVars(f *form.Form, s *submission.Submission, format export.Formatter) func(string) string {
	return func(name string) string {
		switch name {
		case export.AttrID:
			if s.ID == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(s.ID), 10)
		case export.AttrDateCreated:
			return timeOrNow(s.CreatedAt).Format(export.DateTimeLayout)
		case export.AttrDateUpdated:
			return timeOrNow(s.UpdatedAt).Format(export.DateTimeLayout)
		case export.AttrSubmittedFrom:
			return s.SubmittedFrom
		case "formName":
			return f.Name
		case "formHandle":
			return f.Handle
		}
		fd, ok := f.Field(name)
		if !ok {
			return ""
		}
		v, _ := s.Value(name)
		return format.Format(fd, v)
	}
}

func timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// Title renders the form's title format for a submission, falling back to
// the creation date when the result is blank.
func Title(f *form.Form, s *submission.Submission, format export.Formatter) string {
	tpl := f.TitleFormat
	if strings.TrimSpace(tpl) == "" {
		tpl = DefaultTitleFormat
	}
	title := strings.TrimSpace(render(tpl, submissionVars(f, s, format)))
	if title == "" {
		title = timeOrNow(s.CreatedAt).Format(export.DateTimeLayout)
	}
	if utf8.RuneCountInString(title) > 255 {
		title = string([]rune(title)[:255])
	}
	return title
}
