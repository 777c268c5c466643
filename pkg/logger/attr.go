package logger

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/valdi/pkg/result"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Failure records a validation failure under the key "failure" as text.
// If f is nil, it returns an empty Attr.
func Failure(f result.ValidationFailure) slog.Attr {
	if f == nil {
		return slog.Attr{}
	}
	return slog.String("failure", failureText(f))
}

// Failures groups validation failures under the key "failures", indexed by
// their position. If there are none, it returns an empty Attr.
func Failures[F result.ValidationFailure](fs []F) slog.Attr {
	if len(fs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(fs))
	for i, f := range fs {
		as = append(as, slog.String(strconv.Itoa(i), failureText(f)))
	}
	return slog.Attr{Key: "failures", Value: slog.GroupValue(as...)}
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func failureText(f result.ValidationFailure) string {
	switch v := f.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
