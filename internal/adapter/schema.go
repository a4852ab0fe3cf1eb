package adapter

import (
	"strings"

	"google.golang.org/genai"
)

// Schema type names. They follow JSON Schema spelling.
const (
	SchemaObject = "object"
	SchemaArray  = "array"
	SchemaString = "string"
)

// Schema is the subset of JSON Schema understood by every provider.
type Schema struct {
	Type        string
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	Enum        []string
}

// toGenai converts the schema into the genai SDK representation.
func (s *Schema) toGenai() *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        genai.Type(strings.ToUpper(s.Type)),
		Description: s.Description,
		Items:       s.Items.toGenai(),
		Required:    s.Required,
		Enum:        s.Enum,
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenai()
		}
	}

	return out
}

// toJSONSchema converts the schema into a JSON Schema document.
func (s *Schema) toJSONSchema() map[string]any {
	if s == nil {
		return nil
	}

	out := map[string]any{"type": s.Type}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Items != nil {
		out["items"] = s.Items.toJSONSchema()
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.toJSONSchema()
		}
		out["properties"] = props
	}

	return out
}
