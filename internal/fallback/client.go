// Package fallback invokes an external AI extraction service when the
// deterministic pipeline leaves critical fields unfilled, and merges the
// response without ever overwriting deterministic results.
package fallback

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/admissions-parser/internal/schemas"
)

// Response is the extraction service's JSON contract.
type Response struct {
	Success bool              `json:"success"`
	Updates map[string]string `json:"updates,omitempty"`
	Misc    []string          `json:"misc,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// request is the outbound JSON body.
type request struct {
	DocumentText string `json:"document_text"`
}

// Extractor is one outbound extraction capability.
type Extractor interface {
	// Name identifies the extractor in metrics ("Extracted via <name>").
	Name() string
	// Extract sends the original unfiltered document text and returns the
	// service's structured response.
	Extract(ctx context.Context, documentText string) (*Response, error)
}

// HTTPConfig configures the HTTP extractor.
type HTTPConfig struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"min=0"`
}

const defaultHTTPTimeout = 45 * time.Second

// HTTPExtractor posts the document to an extraction endpoint.
type HTTPExtractor struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewHTTPExtractor builds an HTTP extractor after validating its config.
func NewHTTPExtractor(cfg HTTPConfig, logger *slog.Logger) (*HTTPExtractor, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, &APICallError{Message: "invalid extractor config", Cause: err}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultHTTPTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPExtractor{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

// Name identifies this extractor in metrics.
func (e *HTTPExtractor) Name() string { return "AI extraction service" }

// Extract posts {document_text} and decodes the schema-validated response.
func (e *HTTPExtractor) Extract(ctx context.Context, documentText string) (*Response, error) {
	reqID := uuid.New().String()
	start := time.Now()

	body, err := json.Marshal(request{DocumentText: documentText})
	if err != nil {
		return nil, &APICallError{Message: "encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return nil, &APICallError{Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	e.logger.Info("fallback.request", "req_id", reqID, "url", e.url, "content_length", len(body))

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Error("fallback.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, &APICallError{Message: "send request", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)

	e.logger.Info("fallback.response", "req_id", reqID, "status", resp.StatusCode,
		"bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode/100 != 2 {
		return nil, &APICallError{Message: "non-2xx status " + resp.Status}
	}

	return parseExtractionResponse(raw)
}

// parseExtractionResponse runs raw bytes through the extraction schema gate
// before decoding, and rejects responses that report failure. Every extractor
// goes through this so no response shape skips validation.
func parseExtractionResponse(raw []byte) (*Response, error) {
	if err := schemas.ValidateExtractionResponse(raw); err != nil {
		return nil, &ParseError{Message: "response failed schema validation", Cause: err}
	}

	var parsed Response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ParseError{Message: "decode response", Cause: err}
	}
	if !parsed.Success {
		return nil, &APICallError{Message: "service reported failure: " + parsed.Error}
	}

	return &parsed, nil
}
