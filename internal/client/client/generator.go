package client

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the model used when the configuration names none.
const DefaultModel = "gemini-2.5-flash"

// GenerateRequest is a single structured-output generation call.
type GenerateRequest struct {
	Model  string
	Prompt string
	// Schema constrains the response to JSON of this shape.
	Schema *genai.Schema
}

// Generator produces the raw JSON text of a structured-output generation.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GenAIClient calls the Gemini API through google.golang.org/genai.
type GenAIClient struct {
	client *genai.Client
	// initErr is returned from every call when the client could not be built.
	initErr error
}

var _ Generator = (*GenAIClient)(nil)

// GenAIOptions configures NewGenAIClient.
type GenAIOptions struct {
	APIKey string
	// BaseURL overrides the API endpoint; empty means the SDK default.
	BaseURL string
}

// NewGenAIClient never fails: a missing API key or an SDK construction error
// yields a client whose calls all return that error, so the caller falls
// back at call time instead of at startup.
func NewGenAIClient(ctx context.Context, opts GenAIOptions) *GenAIClient {
	if opts.APIKey == "" {
		return &GenAIClient{initErr: ErrMissingAPIKey}
	}

	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return &GenAIClient{initErr: fmt.Errorf("failed to create GenAI client: %w", err)}
	}
	return &GenAIClient{client: c}
}

func (c *GenAIClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if c.initErr != nil {
		return "", c.initErr
	}

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
