// Package errors provides structured error handling for servicekit.
//
// Errors carry a machine-readable code, an HTTP status mapping, and a
// retryable flag. Callers branch on the code (for example NOT_FOUND from a
// locator lookup) rather than matching message text.
package errors
