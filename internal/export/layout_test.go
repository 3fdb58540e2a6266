package export

import (
	"testing"
	"time"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func matrixField() field.Field {
	return field.Field{
		ID:     3,
		Handle: "people",
		Name:   "People",
		Type:   field.TypeMatrix,
		Settings: datatypes.NewJSONType(field.Settings{BlockTypes: []field.BlockType{
			{Handle: "person", Name: "Person", Fields: []field.SubField{
				{Handle: "first", Name: "First", Type: field.TypePlainText},
				{Handle: "last", Name: "Last", Type: field.TypePlainText},
			}},
			{Handle: "pet", Name: "Pet", Fields: []field.SubField{
				{Handle: "kind", Name: "Kind", Type: field.TypeDropdown},
			}},
		}}),
	}
}

func layoutForm() *form.Form {
	return &form.Form{
		ID:     1,
		Handle: "contact",
		Fields: []field.Field{
			{ID: 2, Handle: "email", Name: "Email", Type: field.TypeEmail, SortOrder: 2},
			{ID: 1, Handle: "name", Name: "Name", Type: field.TypePlainText, SortOrder: 1},
			func() field.Field { f := matrixField(); f.SortOrder = 3; return f }(),
		},
	}
}

func TestColumns_AttributesFirstThenSortOrder(t *testing.T) {
	cols := Columns(layoutForm())
	var handles []string
	for _, c := range cols {
		handles = append(handles, c.Handle)
	}
	assert.Equal(t, []string{"id", "title", "dateCreated", "dateUpdated", "submittedFrom", "name", "email", "people"}, handles)
}

func TestSelectColumns_Mapping(t *testing.T) {
	cols := SelectColumns(layoutForm(), exportdomain.Mapping{
		{Handle: "email", Column: "E-mail address", Included: true},
		{Handle: "name", Column: "", Included: false},
		{Handle: "id", Column: "", Included: true},
		{Handle: "missing", Column: "X", Included: true},
	})
	require.Len(t, cols, 2)
	assert.Equal(t, "E-mail address", cols[0].Label)
	assert.Equal(t, "ID", cols[1].Label)
}

func TestLayout_HeaderReservesBlockSpans(t *testing.T) {
	cols := SelectColumns(layoutForm(), exportdomain.Mapping{
		{Handle: "name", Column: "Name", Included: true},
		{Handle: "people", Column: "People", Included: true},
	})
	l := NewLayout(cols, NewFormatter("", ""), LayoutOptions{})
	assert.Equal(t, 4, l.Width())
	assert.Equal(t, []string{"Name", "People:Person:First", "People:Person:Last", "People:Pet:Kind"}, l.Header())

	l = NewLayout(cols, NewFormatter("", ""), LayoutOptions{IgnoreBlockNames: true})
	assert.Equal(t, []string{"Name", "First", "Last", "Kind"}, l.Header())
}

func TestLayout_RowsWithOverflow(t *testing.T) {
	cols := SelectColumns(layoutForm(), exportdomain.Mapping{
		{Handle: "name", Included: true},
		{Handle: "people", Included: true},
	})
	s := submission.Submission{Content: datatypes.JSONMap{
		"name": "Ann",
		"people": []any{
			map[string]any{"type": "person", "fields": map[string]any{"first": "A", "last": "One"}},
			map[string]any{"type": "pet", "fields": map[string]any{"kind": "cat"}},
			map[string]any{"type": "person", "fields": map[string]any{"first": "B", "last": "Two"}},
		},
	}}

	rows := NewLayout(cols, NewFormatter("", ""), LayoutOptions{}).Rows(s)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Ann", "A", "One", "cat"}, rows[0])
	assert.Equal(t, []string{"", "B", "Two", ""}, rows[1])

	rows = NewLayout(cols, NewFormatter("", ""), LayoutOptions{IgnoreMultipleRows: true}).Rows(s)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Ann", "A", "One", "cat"}, rows[0])
}

func TestLayout_MissingBlocksAreBlank(t *testing.T) {
	cols := SelectColumns(layoutForm(), exportdomain.Mapping{
		{Handle: "people", Included: true},
		{Handle: "email", Included: true},
	})
	rows := NewLayout(cols, NewFormatter("", ""), LayoutOptions{}).Rows(submission.Submission{
		Content: datatypes.JSONMap{"email": "a@b.c"},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"", "", "", "a@b.c"}, rows[0])
}

func TestLayout_Attributes(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cols := SelectColumns(layoutForm(), exportdomain.Mapping{
		{Handle: "id", Included: true},
		{Handle: "title", Included: true},
		{Handle: "dateCreated", Included: true},
		{Handle: "submittedFrom", Included: true},
	})
	rows := NewLayout(cols, NewFormatter("", ""), LayoutOptions{}).Rows(submission.Submission{
		ID:            17,
		Title:         "Hello\nthere",
		CreatedAt:     created,
		SubmittedFrom: "https://example.com/contact",
	})
	assert.Equal(t, []string{"17", "Hello there", "2024-01-02 03:04:05", "https://example.com/contact"}, rows[0])
}
