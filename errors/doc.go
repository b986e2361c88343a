// Package errors provides structured error types for the sharedarray library.
//
// Errors are categorized by Phase (where in the array lifecycle the error
// occurred) and Kind (error category). Core precondition violations panic
// with an *Error; registry operations return them as values.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
//		Value(idx).
//		Detail("index %d out of bounds (length %d)", idx, n).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseAccess, 10, 5)
//	err := errors.NotInitialized("shared array")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
