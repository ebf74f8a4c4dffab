// Package logger provides structured logging for servicekit built on zerolog.
//
// It supports console and JSON output, component tagging, and a global
// logger with package-level convenience functions. Library packages default
// to Nop() when no logger is supplied.
package logger
