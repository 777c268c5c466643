package result

import (
	"errors"
	"fmt"
)

// ContractViolationError is raised when a caller asserts that a Result is a
// success but it holds a failure. The original failure is kept as payload.
type ContractViolationError struct {
	Failure ValidationFailure
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("validation failed due to contract violation: %T: %v", e.Failure, e.Failure)
}

// Unwrap exposes the failure when it is an error itself, so errors.Is and
// errors.As can match domain failures through the violation.
func (e *ContractViolationError) Unwrap() error {
	if err, ok := e.Failure.(error); ok {
		return err
	}
	return nil
}

func NewContractViolationError(failure ValidationFailure) *ContractViolationError {
	return &ContractViolationError{Failure: failure}
}

// IsContractViolation reports whether err is or wraps a *ContractViolationError.
func IsContractViolation(err error) bool {
	var e *ContractViolationError
	return errors.As(err, &e)
}

// AsContractViolation extracts the *ContractViolationError from err.
func AsContractViolation(err error) (*ContractViolationError, bool) {
	var e *ContractViolationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
