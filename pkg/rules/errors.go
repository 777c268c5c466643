package rules

import (
	"errors"
	"strings"
)

var (
	// ErrNilGetter is the panic value of helpers declared without a getter.
	ErrNilGetter = errors.New("rules: field getter must not be nil")
	// ErrInvalidPattern is wrapped in the panic value of Glob and Matches for malformed patterns.
	ErrInvalidPattern = errors.New("rules: invalid pattern")
	// ErrInvalidSchema is wrapped in the panic value of Schema for documents that do not compile.
	ErrInvalidSchema = errors.New("rules: invalid json schema")
)

// FieldError is a validation failure attached to a single input field.
type FieldError struct {
	Field   string         `json:"field"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// ValidationFailure marks FieldError as a result.ValidationFailure.
func (FieldError) ValidationFailure() {}

// Error renders the failure as "<field> <message>".
func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// FieldErrors is an ordered collection of field failures.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the failures for field in declaration order.
func (fe FieldErrors) Get(field string) []FieldError {
	var out []FieldError
	for _, err := range fe {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the distinct failing fields in first-seen order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Collect returns nil for no failures, otherwise a FieldErrors error.
//
//	if err := rules.Collect(f.Check(in)); err != nil {
//		return err
//	}
func Collect(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return FieldErrors(errs)
}

// Extract unwraps FieldErrors or a single FieldError from err.
func Extract(err error) (FieldErrors, bool) {
	if err == nil {
		return nil, false
	}

	var many FieldErrors
	if errors.As(err, &many) {
		return many, true
	}

	var one FieldError
	if errors.As(err, &one) {
		return FieldErrors{one}, true
	}
	return nil, false
}
