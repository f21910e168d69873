// Package llm provides the remote AI provider abstraction. Each Generate
// call is exactly one round trip: no retries, no caching, no rate
// limiting. A structured response shape can be requested per call, but it
// is a request, not a guarantee; callers must validate what comes back.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse indicates the provider returned no usable content.
var ErrEmptyResponse = errors.New("llm: empty response from provider")

// Client defines the interface for AI providers.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is one generation request.
type Request struct {
	// Prompt is the full instruction text.
	Prompt string
	// Temperature overrides the client default when non-nil.
	Temperature *float64
	// Schema, when non-nil, asks the provider for a JSON object of this
	// shape. Providers without native structured output fall back to
	// JSON-mode framing.
	Schema *Schema
}

// FieldType is the JSON type of a schema field.
type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldString FieldType = "string"
)

// Field describes one property of a requested response object.
type Field struct {
	Name string
	Type FieldType
	// Enum restricts a string field to the listed values.
	Enum []string
}

// Schema describes a requested flat JSON object shape. All fields are
// required.
type Schema struct {
	Fields []Field
}

// Temp is a convenience for building Request.Temperature values.
func Temp(t float64) *float64 { return &t }

// Config holds configuration for constructing a provider client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
