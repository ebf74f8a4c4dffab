// Package response defines an HTTP response contract: a fixed status-code
// enumeration with family bucketing, an immutable Response value, and a
// fluent Builder.
//
//	resp, err := response.OK(widget).
//	    ContentType("application/json").
//	    Tag("v1").
//	    Build()
//
// Invalid arguments (a nil status, a code outside 100-599) are recorded by
// the builder and surfaced from Build as an INVALID_INPUT error.
package response
