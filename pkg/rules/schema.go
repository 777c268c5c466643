package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrymomot/valdi/pkg/constraint"
)

// Schema validates the value returned by get against a JSON Schema document.
// The value is converted to its JSON form first, so structs are checked by
// their json tags. The schema is compiled once; Schema panics if it is
// invalid.
//
// The failure message is the most specific schema violation.
func Schema[In, T any](field, schemaJSON string, get func(In) T) constraint.Constraint[In, FieldError] {
	if get == nil {
		panic(ErrNilGetter)
	}

	sch, err := compileSchema(schemaJSON)
	if err != nil {
		panic(err)
	}

	return constraint.Func[In, FieldError](func(in In) (FieldError, bool) {
		doc, err := toJSONValue(get(in))
		if err != nil {
			return FieldError{
				Field:   field,
				Code:    "schema",
				Message: "must be encodable as JSON",
			}, true
		}

		if err := sch.Validate(doc); err != nil {
			return FieldError{
				Field:   field,
				Code:    "schema",
				Message: schemaMessage(err),
				Params:  map[string]any{"location": schemaLocation(err)},
			}, true
		}
		return FieldError{}, false
	})
}

// schemaResource names the compiled document. It must not depend on caller
// input: the compiler parses it as a URL.
const schemaResource = "schema.json"

func compileSchema(schemaJSON string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	sch, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return sch, nil
}

func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func deepestCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return deepestCause(ve).Message
	}
	return err.Error()
}

func schemaLocation(err error) string {
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return deepestCause(ve).InstanceLocation
	}
	return ""
}
