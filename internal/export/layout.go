package export

import (
	"sort"
	"strconv"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/linskybing/forms-go/internal/domain/field"
	"github.com/linskybing/forms-go/internal/domain/form"
	"github.com/linskybing/forms-go/internal/domain/submission"
)

// Submission attributes exported ahead of the form's own fields.
const (
	AttrID            = "id"
	AttrTitle         = "title"
	AttrDateCreated   = "dateCreated"
	AttrDateUpdated   = "dateUpdated"
	AttrSubmittedFrom = "submittedFrom"
)

var attributes = []Column{
	{Handle: AttrID, Label: "ID"},
	{Handle: AttrTitle, Label: "Title"},
	{Handle: AttrDateCreated, Label: "Date created"},
	{Handle: AttrDateUpdated, Label: "Date updated"},
	{Handle: AttrSubmittedFrom, Label: "Submitted from"},
}

// Column is one exportable field. Field is nil for submission attributes.
type Column struct {
	Handle string
	Label  string
	Field  *field.Field
}

// Columns lists every exportable column of a form in layout order.
func Columns(f *form.Form) []Column {
	cols := make([]Column, 0, len(attributes)+len(f.Fields))
	cols = append(cols, attributes...)

	fields := make([]field.Field, len(f.Fields))
	copy(fields, f.Fields)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].SortOrder < fields[j].SortOrder })
	for i := range fields {
		fd := fields[i]
		cols = append(cols, Column{Handle: fd.Handle, Label: fd.Name, Field: &fd})
	}
	return cols
}

// SelectColumns applies an export mapping. Included entries keep mapping
// order and may rename the column; an empty mapping selects every column.
func SelectColumns(f *form.Form, m exportdomain.Mapping) []Column {
	all := Columns(f)
	if len(m) == 0 {
		return all
	}
	byHandle := make(map[string]Column, len(all))
	for _, c := range all {
		byHandle[c.Handle] = c
	}
	var out []Column
	for _, e := range m {
		if !e.Included {
			continue
		}
		c, ok := byHandle[e.Handle]
		if !ok {
			continue
		}
		if e.Column != "" {
			c.Label = e.Column
		}
		out = append(out, c)
	}
	return out
}

type LayoutOptions struct {
	// IgnoreBlockNames drops the "Column:Block:" prefix from repeating headings.
	IgnoreBlockNames bool
	// IgnoreMultipleRows drops repeated blocks instead of emitting extra rows.
	IgnoreMultipleRows bool
}

// Layout maps columns onto fixed cell positions. A repeating column reserves
// one span per block type, wide enough for all of that block's fields.
type Layout struct {
	columns   []Column
	offsets   []int
	blockSpan []map[string]int
	width     int
	format    Formatter
	opts      LayoutOptions
}

func NewLayout(cols []Column, format Formatter, opts LayoutOptions) *Layout {
	l := &Layout{
		columns:   cols,
		offsets:   make([]int, len(cols)),
		blockSpan: make([]map[string]int, len(cols)),
		format:    format,
		opts:      opts,
	}
	pos := 0
	for i, c := range cols {
		l.offsets[i] = pos
		if c.Field == nil || c.Field.Kind() != field.KindRepeating {
			pos++
			continue
		}
		spans := make(map[string]int)
		for _, bt := range c.Field.BlockTypes() {
			spans[bt.Handle] = pos
			pos += len(bt.Fields)
		}
		l.blockSpan[i] = spans
	}
	l.width = pos
	return l
}

func (l *Layout) Width() int {
	return l.width
}

func (l *Layout) Header() []string {
	header := make([]string, 0, l.width)
	for _, c := range l.columns {
		if c.Field == nil || c.Field.Kind() != field.KindRepeating {
			header = append(header, c.Label)
			continue
		}
		for _, bt := range c.Field.BlockTypes() {
			for _, sf := range bt.Fields {
				if l.opts.IgnoreBlockNames {
					header = append(header, sf.Name)
				} else {
					header = append(header, c.Label+":"+bt.Name+":"+sf.Name)
				}
			}
		}
	}
	return header
}

// Rows renders a submission as one main row plus any overflow rows produced
// by repeated blocks. Every row has the full layout width.
func (l *Layout) Rows(s submission.Submission) [][]string {
	main := make([]string, l.width)
	var extra [][]string

	for i, c := range l.columns {
		off := l.offsets[i]
		if c.Field == nil {
			main[off] = attribute(s, c.Handle)
			continue
		}
		v, _ := s.Value(c.Handle)
		if c.Field.Kind() != field.KindRepeating {
			main[off] = l.format.Format(*c.Field, v)
			continue
		}

		types := make(map[string]field.BlockType)
		for _, bt := range c.Field.BlockTypes() {
			types[bt.Handle] = bt
		}
		seen := make(map[string]int)
		for _, b := range blocks(v) {
			bt, ok := types[b.typ]
			if !ok {
				continue
			}
			n := seen[b.typ]
			seen[b.typ]++

			row := main
			if n > 0 {
				if l.opts.IgnoreMultipleRows {
					continue
				}
				for len(extra) < n {
					extra = append(extra, make([]string, l.width))
				}
				row = extra[n-1]
			}
			start := l.blockSpan[i][bt.Handle]
			for j, sf := range bt.Fields {
				row[start+j] = l.format.Format(sf.AsField(), b.fields[sf.Handle])
			}
		}
	}
	return append([][]string{main}, extra...)
}

type block struct {
	typ    string
	fields map[string]any
}

func blocks(v any) []block {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]block, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		typ, _ := m["type"].(string)
		fields, _ := m["fields"].(map[string]any)
		out = append(out, block{typ: typ, fields: fields})
	}
	return out
}

func attribute(s submission.Submission, handle string) string {
	switch handle {
	case AttrID:
		return strconv.FormatUint(uint64(s.ID), 10)
	case AttrTitle:
		return newlines.Replace(s.Title)
	case AttrDateCreated:
		return s.CreatedAt.Format(DateTimeLayout)
	case AttrDateUpdated:
		return s.UpdatedAt.Format(DateTimeLayout)
	case AttrSubmittedFrom:
		return s.SubmittedFrom
	}
	return ""
}
