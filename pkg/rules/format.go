package rules

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/valdi/pkg/constraint"
)

// Email accepts a bare address such as ada@example.com. Display names are
// rejected and the domain must contain at least one dot.
func Email[In any](field string, get func(In) string) constraint.Constraint[In, FieldError] {
	return rule(field, "email", "must be a valid email address", nil, get, isEmail)
}

func isEmail(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}

	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Name != "" || addr.Address != v {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL accepts absolute URLs with a host. When schemes are given the URL
// scheme must be one of them.
func URL[In any](field string, get func(In) string, schemes ...string) constraint.Constraint[In, FieldError] {
	schemes = slices.Clone(schemes)

	message := "must be a valid URL"
	var params map[string]any
	if len(schemes) > 0 {
		message = fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", "))
		params = map[string]any{"schemes": schemes}
	}

	return rule(field, "url", message, params, get, func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return false
		}
		u, err := url.ParseRequestURI(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
	})
}

// UUID accepts the canonical 36 character form.
func UUID[In any](field string, get func(In) string) constraint.Constraint[In, FieldError] {
	return rule(field, "uuid", "must be a valid UUID", nil, get, func(v string) bool {
		// uuid.Parse also accepts urn and braced forms
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	})
}

// Matches rejects strings that do not match pattern. It panics if pattern
// does not compile.
func Matches[In any](field, pattern string, get func(In) string) constraint.Constraint[In, FieldError] {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err))
	}
	return rule(field, "pattern", "must match the required format",
		map[string]any{"pattern": pattern}, get, re.MatchString)
}
