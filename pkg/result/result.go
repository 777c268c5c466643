package result

import "fmt"

// Result holds either a success value of type S or a failure of type F.
//
// The zero value is a failure carrying the zero F; construct results with
// Success and Failure instead.
type Result[S any, F ValidationFailure] struct {
	value S
	err   F
	ok    bool
}

// Success wraps v as a successful Result.
// The failure type comes first so it can be spelled out while S is inferred:
//
//	r := result.Success[MyError](user)
func Success[F ValidationFailure, S any](v S) Result[S, F] {
	return Result[S, F]{value: v, ok: true}
}

// Failure wraps err as a failed Result.
//
//	r := result.Failure[User](ErrNameBlank)
func Failure[S any, F ValidationFailure](err F) Result[S, F] {
	return Result[S, F]{err: err}
}

func (r Result[S, F]) IsSuccess() bool {
	return r.ok
}

func (r Result[S, F]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value. The boolean is false for a failure.
func (r Result[S, F]) Value() (S, bool) {
	if !r.ok {
		var zero S
		return zero, false
	}
	return r.value, true
}

// Err returns the failure. The boolean is false for a success.
func (r Result[S, F]) Err() (F, bool) {
	if r.ok {
		var zero F
		return zero, false
	}
	return r.err, true
}

// ValueOr returns the success value or def.
func (r Result[S, F]) ValueOr(def S) S {
	if r.ok {
		return r.value
	}
	return def
}

// ValueOrElse returns the success value, or the result of fallback applied to
// the failure. fallback is never called for a success.
func (r Result[S, F]) ValueOrElse(fallback func(F) S) S {
	if r.ok {
		return r.value
	}
	return fallback(r.err)
}

// MustValue returns the success value and panics with a
// *ContractViolationError when the Result is a failure.
func (r Result[S, F]) MustValue() S {
	if !r.ok {
		panic(NewContractViolationError(r.err))
	}
	return r.value
}

// Unwrap returns the success value, or a *ContractViolationError for a failure.
func (r Result[S, F]) Unwrap() (S, error) {
	if !r.ok {
		var zero S
		return zero, NewContractViolationError(r.err)
	}
	return r.value, nil
}

func (r Result[S, F]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

// Map applies fn to the success value. A failure passes through untouched.
func Map[S any, F ValidationFailure, U any](r Result[S, F], fn func(S) U) Result[U, F] {
	if !r.ok {
		return Result[U, F]{err: r.err}
	}
	return Result[U, F]{value: fn(r.value), ok: true}
}

// FlatMap chains a Result-returning step. On success the Result returned by
// fn is the outcome; a failure short-circuits without calling fn.
func FlatMap[S any, F ValidationFailure, U any](r Result[S, F], fn func(S) Result[U, F]) Result[U, F] {
	if !r.ok {
		return Result[U, F]{err: r.err}
	}
	return fn(r.value)
}

// MapError applies fn to the failure. A success passes through untouched.
func MapError[S any, F ValidationFailure, G ValidationFailure](r Result[S, F], fn func(F) G) Result[S, G] {
	if r.ok {
		return Result[S, G]{value: r.value, ok: true}
	}
	return Result[S, G]{err: fn(r.err)}
}

// Match folds both states into a single value.
func Match[S any, F ValidationFailure, U any](r Result[S, F], onSuccess func(S) U, onFailure func(F) U) U {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
