// Package errors provides the classified error primitives used across the
// inline-requirements tool.
//
// Errors carry a category (what went wrong), a severity (how bad it is) and a
// small bag of structured context that the CLI adapter turns into log
// attributes and an exit code.
//
// Example usage:
//
//	err := errors.NotFoundError("common requirements document not found").
//		WithContext("path", sourcePath).
//		Build()
package errors
