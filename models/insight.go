// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// InsightType is the category of an [Insight].
type InsightType string

// Supported insight categories. Values from external sources must be
// normalised with [ParseInsightType] before they are stored.
const (
	InsightTypeHistorical  InsightType = "historical"
	InsightTypeTheological InsightType = "theological"
	InsightTypeLinguistic  InsightType = "linguistic"
	InsightTypeApplication InsightType = "application"
)

// InsightTypes lists every supported category in display order.
var InsightTypes = []InsightType{
	InsightTypeHistorical,
	InsightTypeTheological,
	InsightTypeLinguistic,
	InsightTypeApplication,
}

// Valid reports whether t belongs to the closed set of categories.
func (t InsightType) Valid() bool {
	switch t {
	case InsightTypeHistorical, InsightTypeTheological, InsightTypeLinguistic, InsightTypeApplication:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t InsightType) String() string {
	return string(t)
}

// ParseInsightType converts a raw category received from outside the
// process. Matching ignores case and surrounding spaces. The second return
// value is false when s is not a known category.
func ParseInsightType(s string) (InsightType, bool) {
	t := InsightType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Insight is one analysis result produced for a note.
type Insight struct {
	// ID is assigned locally when the reply is parsed.
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Reference is a scripture reference or historical source.
	// Nil means the service did not provide one, which is different
	// from an empty string.
	Reference *string `json:"reference,omitempty"`

	Type InsightType `json:"type"`
}

// insightBlockFooter closes every appended insight block.
const insightBlockFooter = "------------------"

// NoteBlock renders the insight as the delimited text block that is appended
// to note content.
func (i Insight) NoteBlock() string {
	reference := "N/A"
	if i.Reference != nil {
		reference = *i.Reference
	}

	return fmt.Sprintf("\n\n--- AI Insight: %s ---\n%s\nReference: %s\n%s\n",
		i.Title, i.Description, reference, insightBlockFooter)
}
