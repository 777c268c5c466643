package rules

import (
	"fmt"

	"github.com/dmitrymomot/valdi/pkg/constraint"
)

// Min rejects values below min.
func Min[In any, T Numeric](field string, min T, get func(In) T) constraint.Constraint[In, FieldError] {
	return rule(field, "min", fmt.Sprintf("must be >= %v", min),
		map[string]any{"min": min}, get, func(v T) bool { return v >= min })
}

// Max rejects values above max.
func Max[In any, T Numeric](field string, max T, get func(In) T) constraint.Constraint[In, FieldError] {
	return rule(field, "max", fmt.Sprintf("must be <= %v", max),
		map[string]any{"max": max}, get, func(v T) bool { return v <= max })
}

// Between rejects values outside the inclusive range [min, max].
func Between[In any, T Numeric](field string, min, max T, get func(In) T) constraint.Constraint[In, FieldError] {
	return rule(field, "between", fmt.Sprintf("must be between %v and %v", min, max),
		map[string]any{"min": min, "max": max}, get, func(v T) bool { return v >= min && v <= max })
}

func Positive[In any, T Numeric](field string, get func(In) T) constraint.Constraint[In, FieldError] {
	return rule(field, "positive", "must be positive", nil, get, func(v T) bool {
		var zero T
		return v > zero
	})
}

func NonNegative[In any, T Numeric](field string, get func(In) T) constraint.Constraint[In, FieldError] {
	return rule(field, "non_negative", "must be >= 0", nil, get, func(v T) bool {
		var zero T
		return v >= zero
	})
}
