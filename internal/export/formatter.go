package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/forms-go/internal/domain/field"
)

const DateTimeLayout = "2006-01-02 15:04:05"

var dateInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	DateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var newlines = strings.NewReplacer("\r\n", " ", "\n\r", " ", "\r", " ", "\n", " ")

// Formatter renders stored field values as flat export cells.
type Formatter struct {
	Yes string
	No  string
}

func NewFormatter(yes, no string) Formatter {
	if yes == "" {
		yes = "Yes"
	}
	if no == "" {
		no = "No"
	}
	return Formatter{Yes: yes, No: no}
}

// Format renders one value. Repeating values are laid out by Layout and
// render as their plain text here.
func (f Formatter) Format(fd field.Field, v any) string {
	if v == nil {
		if fd.Kind() == field.KindBoolean {
			return f.No
		}
		return ""
	}
	switch fd.Kind() {
	case field.KindAsset:
		return strings.Join(collect(v, "url"), "\n")
	case field.KindRelation:
		return strings.Join(collect(v, "title"), ", ")
	case field.KindMultiChoice:
		return strings.Join(collect(v, "value"), ", ")
	case field.KindSingleChoice:
		return newlines.Replace(scalar(pick(v, "value")))
	case field.KindBoolean:
		if truthy(v) {
			return f.Yes
		}
		return f.No
	case field.KindTable:
		return formatTable(fd, v)
	case field.KindDateTime:
		return formatDate(v)
	default:
		// plain, repeating and unknown kinds
		return newlines.Replace(scalar(v))
	}
}

// collect flattens a list value. Map elements contribute the given key.
func collect(v any, key string) []string {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []string:
		for _, s := range t {
			items = append(items, s)
		}
	default:
		items = []any{v}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s := scalar(pick(it, key))
		if s == "" {
			continue
		}
		out = append(out, newlines.Replace(s))
	}
	return out
}

func pick(v any, key string) any {
	if m, ok := v.(map[string]any); ok {
		return m[key]
	}
	return v
}

func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case time.Time:
		return t.Format(DateTimeLayout)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return truthyString(t)
	default:
		return false
	}
}

func truthyString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func formatTable(fd field.Field, v any) string {
	rows, ok := v.([]any)
	if !ok {
		return newlines.Replace(scalar(v))
	}
	var order []string
	for _, c := range fd.Settings.Data().Columns {
		order = append(order, c.Handle)
	}
	var cells []string
	for _, r := range rows {
		row, ok := r.(map[string]any)
		if !ok {
			continue
		}
		keys := order
		if len(keys) == 0 {
			keys = make([]string, 0, len(row))
			for k := range row {
				keys = append(keys, k)
			}
			sort.Strings(keys)
		}
		for _, k := range keys {
			if s := scalar(row[k]); s != "" {
				cells = append(cells, newlines.Replace(s))
			}
		}
	}
	return strings.Join(cells, ", ")
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format(DateTimeLayout)
	case map[string]any:
		return formatDate(t["date"])
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateInputLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.Format(DateTimeLayout)
			}
		}
		return newlines.Replace(s)
	default:
		return newlines.Replace(scalar(v))
	}
}
