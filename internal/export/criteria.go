package export

import (
	"strconv"
	"strings"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/linskybing/forms-go/internal/domain/field"
)

// Op is the comparison a Predicate applies to a submission value.
type Op int

const (
	// OpIn matches when the value equals one of Values.
	OpIn Op = iota
	// OpContainsAny matches when the stored selection holds any of Values.
	OpContainsAny
	// OpEmptySelection matches when nothing is selected.
	OpEmptySelection
	// OpTrue matches truthy values.
	OpTrue
	// OpNever matches nothing.
	OpNever
	// OpRelatedTo matches when any of Handles references one of IDs.
	OpRelatedTo
)

type Predicate struct {
	Op      Op
	Handle  string
	Handles []string
	Values  []string
	IDs     []uint
}

// Filter is a conjunction of predicates. The zero Filter matches everything.
type Filter struct {
	Predicates []Predicate
}

// BuildFilter turns per-field export criteria into a Filter. Criteria for
// fields that are not part of the layout are ignored.
func BuildFilter(fields []field.Field, criteria exportdomain.Criteria) Filter {
	var (
		f         Filter
		relations []string
		ids       []uint
	)
	for _, fd := range fields {
		kind := fd.Kind()
		if kind == field.KindAsset || kind == field.KindRelation {
			relations = append(relations, fd.Handle)
		}
		values, ok := criteria[fd.ID]
		if !ok {
			continue
		}
		switch kind {
		case field.KindAsset, field.KindRelation:
			for _, v := range values {
				if id, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64); err == nil {
					ids = append(ids, uint(id))
				}
			}
		case field.KindMultiChoice:
			tokens := nonEmpty(values)
			if len(tokens) == 0 {
				f.Predicates = append(f.Predicates, Predicate{Op: OpEmptySelection, Handle: fd.Handle})
			} else {
				f.Predicates = append(f.Predicates, Predicate{Op: OpContainsAny, Handle: fd.Handle, Values: tokens})
			}
		case field.KindBoolean:
			op := OpNever
			for _, v := range values {
				if truthyString(v) {
					op = OpTrue
					break
				}
			}
			f.Predicates = append(f.Predicates, Predicate{Op: op, Handle: fd.Handle})
		case field.KindSingleChoice, field.KindPlain:
			accepted := nonEmpty(values)
			if len(accepted) == 0 {
				continue
			}
			f.Predicates = append(f.Predicates, Predicate{Op: OpIn, Handle: fd.Handle, Values: accepted})
		default:
			// unknown, repeating, table and date fields are not filterable
		}
	}
	if len(ids) > 0 {
		f.Predicates = append(f.Predicates, Predicate{Op: OpRelatedTo, Handles: relations, IDs: ids})
	}
	return f
}

// Impossible reports whether the filter can never match.
func (f Filter) Impossible() bool {
	for _, p := range f.Predicates {
		if p.Op == OpNever {
			return true
		}
	}
	return false
}

// Matches evaluates the filter against submission content in memory.
func (f Filter) Matches(content map[string]any) bool {
	for _, p := range f.Predicates {
		if !p.matches(content) {
			return false
		}
	}
	return true
}

func (p Predicate) matches(content map[string]any) bool {
	switch p.Op {
	case OpIn:
		v := scalar(content[p.Handle])
		for _, want := range p.Values {
			if v == want {
				return true
			}
		}
		return false
	case OpContainsAny:
		for _, have := range collect(content[p.Handle], "value") {
			for _, want := range p.Values {
				if have == want {
					return true
				}
			}
		}
		return false
	case OpEmptySelection:
		return len(collect(content[p.Handle], "value")) == 0
	case OpTrue:
		return truthy(content[p.Handle])
	case OpRelatedTo:
		for _, h := range p.Handles {
			for _, id := range relatedIDs(content[h]) {
				for _, want := range p.IDs {
					if id == want {
						return true
					}
				}
			}
		}
		return false
	default:
		return false
	}
}

func relatedIDs(v any) []uint {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var ids []uint
	for _, it := range items {
		raw := scalar(pick(it, "id"))
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
