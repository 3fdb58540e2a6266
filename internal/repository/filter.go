package repository

import (
	"encoding/json"
	"strings"

	"github.com/linskybing/forms-go/internal/export"
	"gorm.io/gorm"
)

// ApplyFilter translates an export filter into jsonb conditions on
// submissions.content.
func ApplyFilter(tx *gorm.DB, f export.Filter) *gorm.DB {
	for _, p := range f.Predicates {
		sql, args := predicateSQL(p)
		tx = tx.Where(sql, args...)
	}
	return tx
}

func predicateSQL(p export.Predicate) (string, []any) {
	switch p.Op {
	case export.OpIn:
		return "content ->> ? IN ?", []any{p.Handle, p.Values}
	case export.OpContainsAny:
		var (
			parts []string
			args  []any
		)
		for _, v := range p.Values {
			parts = append(parts, "content -> ? @> ?::jsonb", "content -> ? @> ?::jsonb", "content ->> ? = ?")
			args = append(args,
				p.Handle, jsonArray(v),
				p.Handle, jsonArray(map[string]any{"value": v}),
				p.Handle, v,
			)
		}
		return "(" + strings.Join(parts, " OR ") + ")", args
	case export.OpEmptySelection:
		return "(content -> ? IS NULL OR content -> ? = 'null'::jsonb OR content -> ? = '[]'::jsonb OR content ->> ? = '')",
			[]any{p.Handle, p.Handle, p.Handle, p.Handle}
	case export.OpTrue:
		return "lower(content ->> ?) IN ('1', 'true', 'on', 'yes')", []any{p.Handle}
	case export.OpRelatedTo:
		if len(p.Handles) == 0 || len(p.IDs) == 0 {
			return "1 = 0", nil
		}
		var (
			parts []string
			args  []any
		)
		for _, h := range p.Handles {
			for _, id := range p.IDs {
				parts = append(parts, "content -> ? @> ?::jsonb", "content -> ? @> ?::jsonb")
				args = append(args,
					h, jsonArray(map[string]any{"id": id}),
					h, jsonArray(id),
				)
			}
		}
		return "(" + strings.Join(parts, " OR ") + ")", args
	default:
		return "1 = 0", nil
	}
}

func jsonArray(v any) string {
	b, _ := json.Marshal([]any{v})
	return string(b)
}
