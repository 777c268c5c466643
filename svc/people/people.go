package people

import (
	"strings"

	"github.com/dmitrymomot/valdi/pkg/constraint"
	"github.com/dmitrymomot/valdi/pkg/factory"
	"github.com/dmitrymomot/valdi/pkg/rules"
)

const (
	maxNameLength = 100
	maxAge        = 150
)

// Input is an unvalidated person record as submitted by a client.
type Input struct {
	Name    string `json:"name" yaml:"name"`
	Age     int    `json:"age" yaml:"age"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}

// Person is a validated record. Only the factory returned by NewFactory
// should create one.
type Person struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Failures reported by the person factory.
var (
	ErrNameBlank = rules.FieldError{Field: "name", Code: "required", Message: "must not be blank"}

	ErrAgeNegative = rules.FieldError{Field: "age", Code: "non_negative", Message: "must be >= 0"}

	ErrEmailInvalid = rules.FieldError{Field: "email", Code: "email", Message: "must be a valid email address"}

	ErrWebsiteInvalid = rules.FieldError{
		Field:   "website",
		Code:    "url",
		Message: "must be a valid URL with scheme: http, https",
		Params:  map[string]any{"schemes": []string{"http", "https"}},
	}
)

// Factory creates people from inputs.
type Factory = factory.Factory[Input, Person, rules.FieldError]

// NewFactory returns the person factory. Constraints run in this order:
// name present, name length, age not negative, age upper bound, then e-mail
// and website when provided.
func NewFactory(opts ...factory.Option) *Factory {
	opts = append([]factory.Option{factory.WithName("person")}, opts...)

	return factory.MustNew(func(b *factory.Builder[Input, Person, rules.FieldError]) {
		b.Constraints(func(c *constraint.Builder[Input, rules.FieldError]) {
			c.Gives(ErrNameBlank).On(func(in Input) bool { return strings.TrimSpace(in.Name) == "" })
			c.Add(rules.MaxLen("name", maxNameLength, name))
			c.Add(rules.NonNegative("age", age))
			c.Add(rules.Max("age", maxAge, age))
			c.Add(constraint.If[Input, rules.FieldError](hasEmail, rules.Email("email", email)))
			c.Add(constraint.If[Input, rules.FieldError](hasWebsite, rules.URL("website", website, "http", "https")))
		})
		b.Constructor(newPerson)
	}, opts...)
}

func newPerson(in Input) Person {
	return Person{
		Name:    strings.TrimSpace(in.Name),
		Age:     in.Age,
		Email:   strings.ToLower(in.Email),
		Website: in.Website,
	}
}

func name(in Input) string    { return in.Name }
func age(in Input) int        { return in.Age }
func email(in Input) string   { return in.Email }
func website(in Input) string { return in.Website }

func hasEmail(in Input) bool   { return in.Email != "" }
func hasWebsite(in Input) bool { return in.Website != "" }
