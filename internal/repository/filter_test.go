package repository

import (
	"testing"

	"github.com/linskybing/forms-go/internal/export"
	"github.com/stretchr/testify/assert"
)

func TestPredicateSQL(t *testing.T) {
	tests := []struct {
		name     string
		pred     export.Predicate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "in",
			pred:     export.Predicate{Op: export.OpIn, Handle: "size", Values: []string{"S", "M"}},
			wantSQL:  "content ->> ? IN ?",
			wantArgs: []any{"size", []string{"S", "M"}},
		},
		{
			name:     "true",
			pred:     export.Predicate{Op: export.OpTrue, Handle: "newsletter"},
			wantSQL:  "lower(content ->> ?) IN ('1', 'true', 'on', 'yes')",
			wantArgs: []any{"newsletter"},
		},
		{
			name:    "never",
			pred:    export.Predicate{Op: export.OpNever, Handle: "newsletter"},
			wantSQL: "1 = 0",
		},
		{
			name:    "contains any",
			pred:    export.Predicate{Op: export.OpContainsAny, Handle: "colors", Values: []string{"red"}},
			wantSQL: "(content -> ? @> ?::jsonb OR content -> ? @> ?::jsonb OR content ->> ? = ?)",
			wantArgs: []any{
				"colors", `["red"]`,
				"colors", `[{"value":"red"}]`,
				"colors", "red",
			},
		},
		{
			name:    "related to",
			pred:    export.Predicate{Op: export.OpRelatedTo, Handles: []string{"entries"}, IDs: []uint{4}},
			wantSQL: "(content -> ? @> ?::jsonb OR content -> ? @> ?::jsonb)",
			wantArgs: []any{
				"entries", `[{"id":4}]`,
				"entries", `[4]`,
			},
		},
		{
			name:    "related to nothing",
			pred:    export.Predicate{Op: export.OpRelatedTo},
			wantSQL: "1 = 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := predicateSQL(tt.pred)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPredicateSQL_EmptySelection(t *testing.T) {
	sql, args := predicateSQL(export.Predicate{Op: export.OpEmptySelection, Handle: "colors"})
	assert.Contains(t, sql, "IS NULL")
	assert.Contains(t, sql, "'[]'::jsonb")
	assert.Len(t, args, 4)
}
