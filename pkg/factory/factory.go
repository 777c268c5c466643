package factory

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/valdi/pkg/constraint"
	"github.com/dmitrymomot/valdi/pkg/logger"
	"github.com/dmitrymomot/valdi/pkg/result"
)

// Factory validates raw input against an ordered constraint set and, when
// every constraint passes, builds the output with its constructor.
//
// A Factory holds no mutable state once built; Check and Create can be called
// concurrently from any number of goroutines.
type Factory[In, Out any, Err result.ValidationFailure] struct {
	name        string
	constraints []constraint.Constraint[In, Err]
	construct   func(In) Out
	log         *slog.Logger
}

// Check evaluates every constraint in declaration order and returns every
// failure found. It never stops early and returns an empty slice for valid
// input.
func (f *Factory[In, Out, Err]) Check(in In) []Err {
	return constraint.Evaluate(f.constraints, in)
}

// Create validates in and constructs the output.
// When several constraints fail, the first one in declaration order is
// returned; use Check to see all of them.
func (f *Factory[In, Out, Err]) Create(in In) result.Result[Out, Err] {
	r, _ := f.Inspect(in)
	return r
}

// Inspect does the work of Check and Create with a single pass over the
// constraint set. The result is what Create returns and the slice is what
// Check returns.
func (f *Factory[In, Out, Err]) Inspect(in In) (result.Result[Out, Err], []Err) {
	errs := f.Check(in)
	if len(errs) > 0 {
		if f.log != nil {
			f.log.Debug("input rejected",
				slog.String("factory", f.name),
				slog.Int("failures", len(errs)),
				logger.Failure(errs[0]),
			)
		}
		return result.Failure[Out](errs[0]), errs
	}
	return result.Success[Err](f.construct(in)), errs
}

// MustCreate is Create followed by MustValue: it panics with a
// *result.ContractViolationError when in is invalid.
// Use it only where the input is already known to be valid.
func (f *Factory[In, Out, Err]) MustCreate(in In) Out {
	return f.Create(in).MustValue()
}

// CreateOrElse returns the constructed output, or fallback applied to the
// first failure.
func (f *Factory[In, Out, Err]) CreateOrElse(in In, fallback func(Err) Out) Out {
	return f.Create(in).ValueOrElse(fallback)
}

// Constraints returns a copy of the constraint set in evaluation order.
func (f *Factory[In, Out, Err]) Constraints() []constraint.Constraint[In, Err] {
	return slices.Clone(f.constraints)
}

// Name returns the name given with WithName, or an empty string.
func (f *Factory[In, Out, Err]) Name() string {
	return f.name
}
