package fallback

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/admissions-parser/internal/llm"
	"github.com/jonathan/admissions-parser/internal/types"
)

// GeminiExtractor extracts fields directly via the Gemini API using the same
// JSON contract as the HTTP extraction service.
type GeminiExtractor struct {
	apiKey string
	config *llm.Config
}

// NewGeminiExtractor builds an extractor that calls Gemini with the given key.
func NewGeminiExtractor(apiKey string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}
	return &GeminiExtractor{apiKey: apiKey, config: llm.DefaultConfig()}, nil
}

// Name identifies this extractor in metrics.
func (e *GeminiExtractor) Name() string { return "Gemini" }

// Extract prompts Gemini for the taxonomy fields and highlight notes.
func (e *GeminiExtractor) Extract(ctx context.Context, documentText string) (*Response, error) {
	client, err := llm.NewClient(ctx, e.config, e.apiKey)
	if err != nil {
		return nil, &APICallError{Message: "failed to create LLM client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	responseText, err := client.GenerateJSON(ctx, buildExtractionPrompt(documentText), llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate content", Cause: err}
	}

	responseText = llm.CleanJSONBlock(responseText)

	return parseExtractionResponse([]byte(responseText))
}

// buildExtractionPrompt constructs the structured extraction prompt listing
// the taxonomy keys the model may populate.
func buildExtractionPrompt(documentText string) string {
	var keys []string
	for _, f := range types.AllFields() {
		keys = append(keys, fmt.Sprintf("  %q (%s)", string(f), f.Label()))
	}

	return fmt.Sprintf(`You extract structured admissions profile data from application documents.

Return ONLY a JSON object with this shape:
{
  "success": true,
  "updates": { "<field_key>": "<string value>", ... },
  "misc": ["<short highlight note>", ...]
}

Allowed field keys:
%s

Rules:
- Only include a field when the document states it explicitly.
- SAT must be 400-1600, ACT 1-36, GPA a number like "3.85".
- misc entries are short factual highlights; never quote essay prose and
  never include parent or family information.

Document:
---
%s
---`, strings.Join(keys, "\n"), documentText)
}
