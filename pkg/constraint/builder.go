package constraint

import (
	"slices"

	"github.com/dmitrymomot/valdi/pkg/result"
)

// Builder accumulates constraints in declaration order.
// Declaration order is evaluation order. A Builder is meant for a single
// assembly pass on one goroutine; Build freezes a copy of what was declared.
type Builder[In any, Err result.ValidationFailure] struct {
	constraints []Constraint[In, Err]
}

// NewBuilder creates an empty constraint builder.
func NewBuilder[In any, Err result.ValidationFailure]() *Builder[In, Err] {
	return &Builder[In, Err]{}
}

// Add appends a pre-built constraint verbatim.
func (b *Builder[In, Err]) Add(c Constraint[In, Err]) *Builder[In, Err] {
	mustConstraint(c)
	b.constraints = append(b.constraints, c)
	return b
}

// AddAll appends several pre-built constraints, keeping their order.
func (b *Builder[In, Err]) AddAll(cs ...Constraint[In, Err]) *Builder[In, Err] {
	for _, c := range cs {
		b.Add(c)
	}
	return b
}

// Gives starts a constraint that reports the static err.
// Finish it with On or Unless:
//
//	b.Gives(ErrNameBlank).On(func(in Input) bool { return in.Name == "" })
func (b *Builder[In, Err]) Gives(err Err) *Gives[In, Err] {
	return &Gives[In, Err]{target: b, static: err}
}

// GivesFunc starts a constraint whose error is built from the input.
// errFn is called only when the condition fires.
//
//	b.GivesFunc(func(in Input) Err { return TooOld{Age: in.Age} }).
//	    Unless(func(in Input) bool { return in.Age < 150 })
func (b *Builder[In, Err]) GivesFunc(errFn func(In) Err) *Gives[In, Err] {
	mustErrorFunc(errFn)
	return &Gives[In, Err]{target: b, lazy: errFn}
}

// Len returns the number of declared constraints.
func (b *Builder[In, Err]) Len() int {
	return len(b.constraints)
}

// Build returns the declared constraints as an independent slice.
func (b *Builder[In, Err]) Build() []Constraint[In, Err] {
	return slices.Clone(b.constraints)
}

// Gives is the pending step between Builder.Gives / Builder.GivesFunc and the
// condition that triggers the error.
type Gives[In any, Err result.ValidationFailure] struct {
	target *Builder[In, Err]
	static Err
	lazy   func(In) Err
}

// On appends a constraint that fails when cond holds.
func (g *Gives[In, Err]) On(cond func(In) bool) *Builder[In, Err] {
	if g.lazy != nil {
		return g.target.Add(WhenFunc[In, Err](g.lazy, cond))
	}
	return g.target.Add(When[In, Err](g.static, cond))
}

// Unless appends a constraint that fails when cond does not hold.
func (g *Gives[In, Err]) Unless(cond func(In) bool) *Builder[In, Err] {
	if g.lazy != nil {
		return g.target.Add(UnlessFunc[In, Err](g.lazy, cond))
	}
	return g.target.Add(Unless[In, Err](g.static, cond))
}
