// Package factory turns raw input into validated domain values.
//
// A Factory bundles an ordered constraint set with a constructor. Constraints
// always run before construction, so a constructed value is known to satisfy
// every declared rule.
//
// # Declaring a factory
//
//	type PersonInput struct {
//	    Name string
//	    Age  int
//	}
//
//	people := factory.MustNew(func(b *factory.Builder[PersonInput, Person, result.Message]) {
//	    b.Constraints(func(c *constraint.Builder[PersonInput, result.Message]) {
//	        c.Gives("name must not be blank").On(func(in PersonInput) bool {
//	            return strings.TrimSpace(in.Name) == ""
//	        })
//	        c.Gives("age must be >= 0").On(func(in PersonInput) bool { return in.Age < 0 })
//	    })
//	    b.Constructor(func(in PersonInput) Person { return Person{Name: in.Name, Age: in.Age} })
//	})
//
// Callers that already hold a []constraint.Constraint use FromConstraints.
// Building without a constructor fails with ErrMissingConstructor; this is
// reported by Build (or panics in MustBuild / MustNew), never at first use.
//
// # Check and Create
//
// Check returns every failure, in declaration order, for rendering a complete
// validation report. Create returns a result.Result holding the constructed
// value, or only the first failure in declaration order:
//
//	people.Check(PersonInput{Name: "", Age: -1})
//	// [name must not be blank age must be >= 0]
//
//	people.Create(PersonInput{Name: "", Age: -1})
//	// Failure(name must not be blank)
//
// The split is deliberate: Create serves flows that show one problem at a
// time and Check serves flows that need the full list.
//
// # Concurrency
//
// Evaluation is synchronous and sequential on the caller's goroutine. A built
// Factory is immutable and safe for concurrent use. Builders are not.
//
// # Logging
//
// WithLogger makes Create emit a debug record for every rejected input with
// the factory name (WithName), the number of failures and the first failure.
package factory
