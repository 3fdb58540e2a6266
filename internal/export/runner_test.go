package export

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

type memForms struct {
	forms map[uint]*form.Form
}

func (m *memForms) FindWithFields(ctx context.Context, id uint) (*form.Form, error) {
	f, ok := m.forms[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return f, nil
}

type memSubmissions struct {
	rows []submission.Submission
}

func (m *memSubmissions) match(q Query) []submission.Submission {
	var out []submission.Submission
	for _, s := range m.rows {
		if s.FormID != q.FormID {
			continue
		}
		if q.MaxID > 0 && s.ID > q.MaxID {
			continue
		}
		if len(q.IDs) > 0 {
			found := false
			for _, id := range q.IDs {
				if id == s.ID {
					found = true
				}
			}
			if !found {
				continue
			}
		} else if !q.Filter.Matches(s.Content) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *memSubmissions) FindSubmissions(ctx context.Context, q Query) ([]submission.Submission, error) {
	out := m.match(q)
	if q.Offset > 0 {
		if q.Offset >= len(out) {
			return nil, nil
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *memSubmissions) CountSubmissions(ctx context.Context, q Query) (int64, error) {
	return int64(len(m.match(q))), nil
}

type memExports struct {
	exports map[uint]*exportdomain.Export
	updates []map[string]any
}

func (m *memExports) FindByID(ctx context.Context, id uint) (*exportdomain.Export, error) {
	e, ok := m.exports[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return e, nil
}

func (m *memExports) UpdateColumns(ctx context.Context, id uint, values map[string]any) error {
	m.updates = append(m.updates, values)
	return nil
}

func staticOptions(o Options) OptionsFunc {
	return func(ctx context.Context) (Options, error) { return o, nil }
}

func runnerForm() *form.Form {
	return &form.Form{
		ID:     1,
		Handle: "contact",
		Fields: []field.Field{
			{ID: 1, Handle: "name", Name: "Name", Type: field.TypePlainText, SortOrder: 1},
			{ID: 2, Handle: "size", Name: "Size", Type: field.TypeDropdown, SortOrder: 2},
			{ID: 3, Handle: "newsletter", Name: "Newsletter", Type: field.TypeLightswitch, SortOrder: 3},
		},
	}
}

func seedSubmissions(n int) *memSubmissions {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sizes := []string{"S", "M", "L"}
	m := &memSubmissions{}
	for i := 1; i <= n; i++ {
		m.rows = append(m.rows, submission.Submission{
			ID:        uint(i),
			FormID:    1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Content: datatypes.JSONMap{
				"name":       "person " + string(rune('a'+i-1)),
				"size":       sizes[i%3],
				"newsletter": i%2 == 0,
			},
		})
	}
	return m
}

func nameMapping() datatypes.JSONType[exportdomain.Mapping] {
	return datatypes.NewJSONType(exportdomain.Mapping{
		{Handle: "id", Column: "ID", Included: true},
		{Handle: "name", Column: "Full name", Included: true},
		{Handle: "size", Column: "Size", Included: true},
		{Handle: "newsletter", Column: "Newsletter", Included: true},
	})
}

func readCSV(t *testing.T, path string, delim rune) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	r := csv.NewReader(fh)
	r.Comma = delim
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func newTestRunner(subs *memSubmissions, exports *memExports, opts Options) *Runner {
	forms := &memForms{forms: map[uint]*form.Form{1: runnerForm()}}
	return NewRunner(forms, subs, exports, staticOptions(opts), nil)
}

func TestRun_SingleChoiceCriteria(t *testing.T) {
	dir := t.TempDir()
	exports := &memExports{}
	r := newTestRunner(seedSubmissions(6), exports, Options{Delimiter: ';'})

	exp := &exportdomain.Export{
		ID:       9,
		FormID:   1,
		Total:    2,
		File:     filepath.Join(dir, "contact.csv"),
		Criteria: datatypes.NewJSONType(exportdomain.Criteria{2: {"S"}}),
		Mapping:  nameMapping(),
	}
	require.NoError(t, r.Run(context.Background(), exp, nil))

	rows := readCSV(t, exp.File, ';')
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Full name", "Size", "Newsletter"}, rows[0])
	// newest first: ids 6 and 3 have size S
	assert.Equal(t, []string{"6", "person f", "S", "Yes"}, rows[1])
	assert.Equal(t, []string{"3", "person c", "S", "No"}, rows[2])

	assert.Equal(t, 2, exp.Resolved)
	require.Len(t, exports.updates, 1)
	assert.Equal(t, 2, exports.updates[0]["resolved"])
}

func TestRun_EmptyResultTouchesNoFile(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(seedSubmissions(3), &memExports{}, Options{Delimiter: ';'})

	path := filepath.Join(dir, "contact.csv")
	exp := &exportdomain.Export{
		FormID:   1,
		File:     path,
		Criteria: datatypes.NewJSONType(exportdomain.Criteria{3: {"0"}}),
	}
	err := r.Run(context.Background(), exp, nil)
	assert.ErrorIs(t, err, ErrNoSubmissions)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_ExplicitIDsWinOverCriteria(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(seedSubmissions(6), &memExports{}, Options{Delimiter: ','})

	exp := &exportdomain.Export{
		FormID:        1,
		Total:         10,
		File:          filepath.Join(dir, "contact.csv"),
		SubmissionIDs: datatypes.JSONSlice[uint]{1, 2},
		Criteria:      datatypes.NewJSONType(exportdomain.Criteria{2: {"nothing"}}),
		Mapping:       nameMapping(),
	}
	require.NoError(t, r.Run(context.Background(), exp, nil))
	rows := readCSV(t, exp.File, ',')
	require.Len(t, rows, 3)
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "1", rows[2][0])
}

func TestRun_ResolvedClampedToTotal(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(seedSubmissions(5), &memExports{}, Options{Delimiter: ';'})
	exp := &exportdomain.Export{FormID: 1, Total: 3, File: filepath.Join(dir, "c.csv")}
	require.NoError(t, r.Run(context.Background(), exp, nil))
	assert.Equal(t, 3, exp.Resolved)
	assert.LessOrEqual(t, exp.Resolved, exp.Total)
}

func TestRun_NoMappingExportsAllColumns(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(seedSubmissions(1), &memExports{}, Options{Delimiter: ';'})
	exp := &exportdomain.Export{FormID: 1, Total: 1, File: filepath.Join(dir, "c.csv")}
	require.NoError(t, r.Run(context.Background(), exp, nil))
	rows := readCSV(t, exp.File, ';')
	assert.Equal(t, []string{"ID", "Title", "Date created", "Date updated", "Submitted from", "Name", "Size", "Newsletter"}, rows[0])
}

func TestRun_NoColumns(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(seedSubmissions(1), &memExports{}, Options{})
	exp := &exportdomain.Export{
		FormID:  1,
		File:    filepath.Join(dir, "c.csv"),
		Mapping: datatypes.NewJSONType(exportdomain.Mapping{{Handle: "name", Included: false}}),
	}
	assert.ErrorIs(t, r.Run(context.Background(), exp, nil), ErrNoColumns)
}

func TestRun_DelimiterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	subs := &memSubmissions{rows: []submission.Submission{{
		ID:      1,
		FormID:  1,
		Content: datatypes.JSONMap{"name": "Smith; John \"JJ\"", "size": "M"},
	}}}
	r := newTestRunner(subs, &memExports{}, Options{Delimiter: ';'})
	exp := &exportdomain.Export{FormID: 1, Total: 1, File: filepath.Join(dir, "c.csv"), Mapping: nameMapping()}
	require.NoError(t, r.Run(context.Background(), exp, nil))

	raw, err := os.ReadFile(exp.File)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "ID;Full name;Size;Newsletter\n"))
	rows := readCSV(t, exp.File, ';')
	assert.Equal(t, "Smith; John \"JJ\"", rows[1][1])
}

func TestRun_PagesAppend(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(seedSubmissions(5), &memExports{}, Options{Delimiter: ';'})
	exp := &exportdomain.Export{FormID: 1, Total: 5, File: filepath.Join(dir, "c.csv"), Mapping: nameMapping()}

	require.NoError(t, r.Run(context.Background(), exp, &Page{Limit: 2, Offset: 0}))
	require.NoError(t, r.Run(context.Background(), exp, &Page{Limit: 2, Offset: 2}))
	require.NoError(t, r.Run(context.Background(), exp, &Page{Limit: 2, Offset: 4}))

	rows := readCSV(t, exp.File, ';')
	require.Len(t, rows, 6)
	var ids []string
	for _, row := range rows[1:] {
		ids = append(ids, row[0])
	}
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, ids)
	assert.Equal(t, 5, exp.Resolved)
}

func TestRun_BatchedMatchesSingleRun(t *testing.T) {
	dir := t.TempDir()
	subs := seedSubmissions(7)

	single := &exportdomain.Export{FormID: 1, Total: 7, File: filepath.Join(dir, "single.csv"), Mapping: nameMapping()}
	require.NoError(t, newTestRunner(subs, &memExports{}, Options{Delimiter: ';'}).Run(context.Background(), single, nil))

	batched := &exportdomain.Export{FormID: 1, Total: 7, File: filepath.Join(dir, "batched.csv"), Mapping: nameMapping()}
	r := newTestRunner(subs, &memExports{}, Options{Delimiter: ';'})
	for offset := 0; offset < 7; offset += 3 {
		require.NoError(t, r.Run(context.Background(), batched, &Page{Limit: 3, Offset: offset}))
	}

	want, err := os.ReadFile(single.File)
	require.NoError(t, err)
	got, err := os.ReadFile(batched.File)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRun_XLSXBatchedMatchesSingleRun(t *testing.T) {
	dir := t.TempDir()
	subs := seedSubmissions(7)
	read := func(path string) [][]string {
		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(0))
		require.NoError(t, err)
		return rows
	}

	single := &exportdomain.Export{FormID: 1, Total: 7, Format: exportdomain.FormatXLSX, File: filepath.Join(dir, "single.xlsx"), Mapping: nameMapping()}
	require.NoError(t, newTestRunner(subs, &memExports{}, Options{}).Run(context.Background(), single, nil))

	batched := &exportdomain.Export{FormID: 1, Total: 7, Format: exportdomain.FormatXLSX, File: filepath.Join(dir, "batched.xlsx"), Mapping: nameMapping()}
	r := newTestRunner(subs, &memExports{}, Options{})
	for offset := 0; offset < 7; offset += 3 {
		require.NoError(t, r.Run(context.Background(), batched, &Page{Limit: 3, Offset: offset}))
	}

	assert.Equal(t, read(single.File), read(batched.File))
}

func TestRun_XLSX(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(seedSubmissions(3), &memExports{}, Options{})
	exp := &exportdomain.Export{
		FormID:  1,
		Total:   3,
		Format:  exportdomain.FormatXLSX,
		File:    filepath.Join(dir, "c.xlsx"),
		Mapping: nameMapping(),
	}
	require.NoError(t, r.Run(context.Background(), exp, &Page{Limit: 2, Offset: 0}))
	require.NoError(t, r.Run(context.Background(), exp, &Page{Limit: 2, Offset: 2}))

	f, err := excelize.OpenFile(exp.File)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Full name", rows[0][1])
	assert.Equal(t, "1", rows[3][0])
}

func TestRun_MissingFile(t *testing.T) {
	r := newTestRunner(seedSubmissions(1), &memExports{}, Options{})
	assert.ErrorIs(t, r.Run(context.Background(), &exportdomain.Export{FormID: 1}, nil), ErrNoFile)
}
