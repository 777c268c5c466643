package constraint

import "github.com/dmitrymomot/valdi/pkg/result"

// Constraint inspects an input and reports an optional failure.
// The boolean is true when the input violates the constraint.
type Constraint[In any, Err result.ValidationFailure] interface {
	Check(in In) (Err, bool)
}

// Func adapts an ordinary function to the Constraint interface.
type Func[In any, Err result.ValidationFailure] func(in In) (Err, bool)

func (f Func[In, Err]) Check(in In) (Err, bool) {
	return f(in)
}

// Predicate is a condition evaluated against the input.
type Predicate[In any] func(in In) bool

// When yields err whenever cond holds for the input.
func When[In any, Err result.ValidationFailure](err Err, cond Predicate[In]) Constraint[In, Err] {
	mustPredicate(cond)
	return Func[In, Err](func(in In) (Err, bool) {
		if cond(in) {
			return err, true
		}
		var zero Err
		return zero, false
	})
}

// Unless yields err whenever cond does not hold for the input.
func Unless[In any, Err result.ValidationFailure](err Err, cond Predicate[In]) Constraint[In, Err] {
	mustPredicate(cond)
	return When(err, negate(cond))
}

// WhenFunc is When with an error computed from the input.
// errFn runs only when cond holds.
func WhenFunc[In any, Err result.ValidationFailure](errFn func(In) Err, cond Predicate[In]) Constraint[In, Err] {
	mustPredicate(cond)
	mustErrorFunc(errFn)
	return Func[In, Err](func(in In) (Err, bool) {
		if cond(in) {
			return errFn(in), true
		}
		var zero Err
		return zero, false
	})
}

// UnlessFunc is Unless with an error computed from the input.
// errFn runs only when cond does not hold.
func UnlessFunc[In any, Err result.ValidationFailure](errFn func(In) Err, cond Predicate[In]) Constraint[In, Err] {
	mustPredicate(cond)
	return WhenFunc(errFn, negate(cond))
}

// If evaluates c only for inputs matching cond; other inputs pass.
//
//	constraint.If(func(in Input) bool { return in.Website != "" }, rules.URL(...))
func If[In any, Err result.ValidationFailure](cond Predicate[In], c Constraint[In, Err]) Constraint[In, Err] {
	mustPredicate(cond)
	mustConstraint(c)
	return Func[In, Err](func(in In) (Err, bool) {
		if !cond(in) {
			var zero Err
			return zero, false
		}
		return c.Check(in)
	})
}

// Evaluate runs every constraint in order and collects every failure.
// It never short-circuits. The returned slice is empty, not nil, when the
// input satisfies all constraints.
func Evaluate[In any, Err result.ValidationFailure](constraints []Constraint[In, Err], in In) []Err {
	errs := make([]Err, 0)
	for _, c := range constraints {
		if err, failed := c.Check(in); failed {
			errs = append(errs, err)
		}
	}
	return errs
}

func negate[In any](cond Predicate[In]) Predicate[In] {
	return func(in In) bool { return !cond(in) }
}
