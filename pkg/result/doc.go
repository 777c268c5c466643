// Package result provides Result, a two-state value that carries either a
// successfully constructed value or a validation failure.
//
// Result replaces panics and sentinel error plumbing for the expected
// "input was invalid" outcome. Exactly one of the two states is active and a
// Result never changes once built.
//
// # Failure types
//
// The failure side of a Result is constrained by the ValidationFailure marker
// interface. Domain error types opt in by implementing the single tag method
// (or by embedding Marker):
//
//	type SignupError string
//
//	func (SignupError) ValidationFailure() {}
//
// Message is a ready-made string failure for quick prototypes and tests.
//
// # Usage
//
//	r := result.Success[result.Message](42)
//
//	doubled := result.Map(r, func(v int) int { return v * 2 })
//	text := result.Map(doubled, strconv.Itoa)
//
//	if v, ok := text.Value(); ok {
//	    fmt.Println(v) // "84"
//	}
//
// Methods cover everything that keeps the type parameters intact (IsSuccess,
// Value, Err, ValueOrElse, MustValue, Unwrap). Transformations that introduce
// a new type parameter (Map, FlatMap, MapError, Match) are package-level
// functions, since Go methods cannot declare their own type parameters.
//
// # Contract violations
//
// MustValue is the one place where a failure becomes a panic. It is meant for
// call sites that have already established the input must be valid. The panic
// value is a *ContractViolationError carrying the original failure, so nothing
// is lost when recovering:
//
//	defer func() {
//	    if rec := recover(); rec != nil {
//	        if cv, ok := result.AsContractViolation(rec.(error)); ok {
//	            log.Printf("broken invariant: %v", cv.Failure)
//	        }
//	    }
//	}()
//
// Unwrap returns the same *ContractViolationError as a plain error for callers
// that prefer Go's (value, error) convention.
package result
