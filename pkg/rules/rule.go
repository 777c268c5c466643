package rules

import (
	"maps"

	"github.com/dmitrymomot/valdi/pkg/constraint"
)

// Numeric is the set of types accepted by the numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// rule fails with a FieldError whenever valid reports false for the field
// value. Params are cloned per failure so callers may modify them.
func rule[In, T any](field, code, message string, params map[string]any, get func(In) T, valid func(T) bool) constraint.Constraint[In, FieldError] {
	if get == nil {
		panic(ErrNilGetter)
	}
	return constraint.UnlessFunc[In, FieldError](
		func(In) FieldError {
			return FieldError{Field: field, Code: code, Message: message, Params: maps.Clone(params)}
		},
		func(in In) bool { return valid(get(in)) },
	)
}
