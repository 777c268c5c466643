// Package rules provides ready-made field constraints for factories.
//
// Every helper takes a field name and a getter that extracts the field from
// the factory input, and returns a constraint.Constraint producing a
// FieldError when the value is rejected:
//
//	factory.New(func(b *factory.Builder[Input, User, rules.FieldError]) {
//		b.Constraints(func(c *constraint.Builder[Input, rules.FieldError]) {
//			c.Add(rules.Required("name", func(in Input) string { return in.Name }))
//			c.Add(rules.Email("email", func(in Input) string { return in.Email }))
//			c.Add(rules.Between("age", 0, 150, func(in Input) int { return in.Age }))
//		})
//		b.Constructor(newUser)
//	})
//
// FieldError carries a stable Code (for example "required" or "min_length")
// and the rule parameters, so callers can translate messages without parsing
// them. Collect turns the output of Factory.Check into a single error.
//
// Helpers panic at declaration time on programmer errors: a nil getter, an
// invalid glob pattern or an invalid JSON schema.
package rules
