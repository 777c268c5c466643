package factory

import (
	"fmt"

	"github.com/dmitrymomot/valdi/pkg/constraint"
	"github.com/dmitrymomot/valdi/pkg/result"
)

// Builder assembles a Factory from declared constraints and a constructor.
// Use it once, on one goroutine, then discard it.
type Builder[In, Out any, Err result.ValidationFailure] struct {
	constraints *constraint.Builder[In, Err]
	construct   func(In) Out
	opts        []Option
}

// NewBuilder creates an empty factory builder.
func NewBuilder[In, Out any, Err result.ValidationFailure](opts ...Option) *Builder[In, Out, Err] {
	return &Builder[In, Out, Err]{
		constraints: constraint.NewBuilder[In, Err](),
		opts:        opts,
	}
}

// Constraints runs block against the builder's constraint scope.
// Calling it more than once keeps appending in order.
func (b *Builder[In, Out, Err]) Constraints(block func(c *constraint.Builder[In, Err])) *Builder[In, Out, Err] {
	if block != nil {
		block(b.constraints)
	}
	return b
}

// Constructor sets the function that builds the output from valid input.
// The last call wins.
func (b *Builder[In, Out, Err]) Constructor(fn func(In) Out) *Builder[In, Out, Err] {
	b.construct = fn
	return b
}

// With appends factory options.
func (b *Builder[In, Out, Err]) With(opts ...Option) *Builder[In, Out, Err] {
	b.opts = append(b.opts, opts...)
	return b
}

// Build freezes the declared constraints and returns the Factory.
// It fails with ErrMissingConstructor when no constructor was set.
func (b *Builder[In, Out, Err]) Build() (*Factory[In, Out, Err], error) {
	if b.construct == nil {
		return nil, ErrMissingConstructor
	}

	o := applyOptions(b.opts)
	return &Factory[In, Out, Err]{
		name:        o.name,
		constraints: b.constraints.Build(),
		construct:   b.construct,
		log:         o.log,
	}, nil
}

// MustBuild is Build that panics on misconfiguration, for factories declared
// at package level or during startup.
func (b *Builder[In, Out, Err]) MustBuild() *Factory[In, Out, Err] {
	f, err := b.Build()
	if err != nil {
		panic(fmt.Errorf("failed to build factory: %w", err))
	}
	return f
}

// New declares a factory in a single block:
//
//	users, err := factory.New(func(b *factory.Builder[UserInput, User, UserError]) {
//	    b.Constraints(func(c *constraint.Builder[UserInput, UserError]) {
//	        c.Gives(ErrNameEmpty).On(func(in UserInput) bool { return in.Name == "" })
//	    })
//	    b.Constructor(func(in UserInput) User { return User{Name: in.Name} })
//	})
func New[In, Out any, Err result.ValidationFailure](block func(b *Builder[In, Out, Err]), opts ...Option) (*Factory[In, Out, Err], error) {
	b := NewBuilder[In, Out, Err](opts...)
	if block != nil {
		block(b)
	}
	return b.Build()
}

// MustNew is New that panics on misconfiguration.
func MustNew[In, Out any, Err result.ValidationFailure](block func(b *Builder[In, Out, Err]), opts ...Option) *Factory[In, Out, Err] {
	b := NewBuilder[In, Out, Err](opts...)
	if block != nil {
		block(b)
	}
	return b.MustBuild()
}

// FromConstraints builds a factory from constraints that were assembled
// elsewhere, bypassing the declaration DSL.
func FromConstraints[In, Out any, Err result.ValidationFailure](
	constraints []constraint.Constraint[In, Err],
	construct func(In) Out,
	opts ...Option,
) (*Factory[In, Out, Err], error) {
	return NewBuilder[In, Out, Err](opts...).
		Constraints(func(c *constraint.Builder[In, Err]) {
			c.AddAll(constraints...)
		}).
		Constructor(construct).
		Build()
}
