package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/valdi/pkg/constraint"
)

// OneOf rejects values that are not in allowed.
func OneOf[In any, T comparable](field string, allowed []T, get func(In) T) constraint.Constraint[In, FieldError] {
	allowed = slices.Clone(allowed)

	names := make([]string, 0, len(allowed))
	for _, v := range allowed {
		names = append(names, fmt.Sprint(v))
	}

	return rule(field, "one_of", "must be one of: "+strings.Join(names, ", "),
		map[string]any{"allowed": names}, get, func(v T) bool {
			return slices.Contains(allowed, v)
		})
}
