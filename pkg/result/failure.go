package result

// ValidationFailure marks a type as a legitimate validation failure.
// The method carries no behavior; it only lets the compiler reject arbitrary
// values on the failure side of a Result.
type ValidationFailure interface {
	ValidationFailure()
}

// Marker can be embedded into a struct to make it a ValidationFailure.
//
//	type RangeError struct {
//	    result.Marker
//	    Min, Max int
//	}
type Marker struct{}

func (Marker) ValidationFailure() {}

// Message is a plain-text validation failure.
type Message string

func (Message) ValidationFailure() {}

func (m Message) Error() string {
	return string(m)
}

func (m Message) String() string {
	return string(m)
}
