// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Validators check input arriving through the HTTP API, the MCP tools and the
// terminal editor before it reaches the note services. The store itself
// accepts any title and content.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural and cross-field checks.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
