// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, identifier
// generation, HTTP response writing and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the request trace id in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TraceIDCtxKey, "4b1f...")
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the request trace id from the context.
// ok is false when the value is missing, empty or has an unexpected type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
