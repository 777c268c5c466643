package constraint

import (
	"errors"

	"github.com/dmitrymomot/valdi/pkg/result"
)

// Declaration errors. They are raised as panics while constraints are being
// declared, never while an input is being checked.
var (
	ErrNilConstraint = errors.New("constraint cannot be nil")
	ErrNilPredicate  = errors.New("constraint predicate cannot be nil")
	ErrNilErrorFunc  = errors.New("constraint error factory cannot be nil")
)

func mustPredicate[In any](cond Predicate[In]) {
	if cond == nil {
		panic(ErrNilPredicate)
	}
}

func mustErrorFunc[In, Err any](fn func(In) Err) {
	if fn == nil {
		panic(ErrNilErrorFunc)
	}
}

func mustConstraint[In any, Err result.ValidationFailure](c Constraint[In, Err]) {
	if c == nil {
		panic(ErrNilConstraint)
	}
}
