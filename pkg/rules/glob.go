package rules

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dmitrymomot/valdi/pkg/constraint"
)

// Glob rejects paths that do not match pattern. Patterns use doublestar
// syntax, so "**" spans directories:
//
//	rules.Glob("config", "configs/**/*.{yaml,yml}", func(in Input) string { return in.Path })
//
// It panics if pattern is malformed.
func Glob[In any](field, pattern string, get func(In) string) constraint.Constraint[In, FieldError] {
	if !doublestar.ValidatePattern(pattern) {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern))
	}
	return rule(field, "glob", fmt.Sprintf("must match %s", pattern),
		map[string]any{"pattern": pattern}, get, func(v string) bool {
			ok, err := doublestar.Match(pattern, v)
			return err == nil && ok
		})
}
