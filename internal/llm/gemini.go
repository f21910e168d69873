package llm

import (
	"context"
	"fmt"

	genai "google.golang.org/genai"
)

// geminiClient is a thin wrapper around the official genai client.
type geminiClient struct {
	cli         *genai.Client
	model       string
	temperature float64
}

// newGeminiClient creates a Gemini API client. When cfg.APIKey is empty
// the genai client falls back to its own environment lookup; a still
// missing key surfaces as an error on the first Generate call, not here.
func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	cc := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if cfg.APIKey != "" {
		cc.APIKey = cfg.APIKey
	}

	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		cli:         cli,
		model:       model,
		temperature: cfg.Temperature,
	}, nil
}

// Generate sends a single generation request to Gemini.
func (g *geminiClient) Generate(ctx context.Context, req Request) (string, error) {
	gc := &genai.GenerateContentConfig{}

	temperature := g.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	if temperature > 0 {
		t := float32(temperature)
		gc.Temperature = &t
	}

	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: req.Prompt}}}},
		gc,
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func toGenaiSchema(s *Schema) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(s.Fields))
	required := make([]string, 0, len(s.Fields))

	for _, f := range s.Fields {
		prop := &genai.Schema{}
		switch f.Type {
		case FieldNumber:
			prop.Type = genai.TypeNumber
		default:
			prop.Type = genai.TypeString
		}
		if len(f.Enum) > 0 {
			prop.Enum = f.Enum
		}
		properties[f.Name] = prop
		required = append(required, f.Name)
	}

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}
