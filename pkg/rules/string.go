package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/valdi/pkg/constraint"
)

// Required rejects empty and whitespace-only strings.
func Required[In any](field string, get func(In) string) constraint.Constraint[In, FieldError] {
	return rule(field, "required", "must not be blank", nil, get, func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// MinLen rejects strings shorter than min runes.
func MinLen[In any](field string, min int, get func(In) string) constraint.Constraint[In, FieldError] {
	return rule(field, "min_length", fmt.Sprintf("must be at least %d characters long", min),
		map[string]any{"min": min}, get, func(v string) bool {
			return utf8.RuneCountInString(v) >= min
		})
}

// MaxLen rejects strings longer than max runes.
func MaxLen[In any](field string, max int, get func(In) string) constraint.Constraint[In, FieldError] {
	return rule(field, "max_length", fmt.Sprintf("must be at most %d characters long", max),
		map[string]any{"max": max}, get, func(v string) bool {
			return utf8.RuneCountInString(v) <= max
		})
}

func Len[In any](field string, exact int, get func(In) string) constraint.Constraint[In, FieldError] {
	return rule(field, "exact_length", fmt.Sprintf("must be exactly %d characters long", exact),
		map[string]any{"length": exact}, get, func(v string) bool {
			return utf8.RuneCountInString(v) == exact
		})
}
