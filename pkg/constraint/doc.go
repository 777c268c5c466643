// Package constraint defines the single-method Constraint capability and a
// fluent Builder for declaring ordered constraint sets.
//
// A constraint inspects an input and reports an optional failure:
//
//	type Constraint[In any, Err result.ValidationFailure] interface {
//	    Check(in In) (Err, bool)
//	}
//
// Constraints declared through the Builder and constraints written by hand
// are indistinguishable to the code that evaluates them.
//
//	b := constraint.NewBuilder[SignupInput, result.Message]()
//	b.Gives("email is required").On(func(in SignupInput) bool { return in.Email == "" })
//	b.Gives("age must be >= 18").Unless(func(in SignupInput) bool { return in.Age >= 18 })
//	b.GivesFunc(func(in SignupInput) result.Message {
//	    return result.Message(fmt.Sprintf("%q is taken", in.Username))
//	}).On(isTaken)
//	b.Add(customConstraint)
//
//	errs := constraint.Evaluate(b.Build(), input)
//
// Evaluate runs every constraint in declaration order and never stops early.
// Nil predicates, nil error factories and nil constraints are programmer
// errors and panic at declaration time.
package constraint
