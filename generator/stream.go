package generator

import (
	"context"
	"fmt"
	"iter"
	"os"

	"google.golang.org/genai"
)

// temperature is fixed and not user-configurable.
const temperature float32 = 0.8

// Client streams structured script generations from the Gemini API.
type Client struct {
	client          *genai.Client
	model           string
	includeAnalysis bool
}

// NewClient builds a generation client from the GEMINI_API_KEY environment
// variable and the given model name.
func NewClient(ctx context.Context, model string, includeAnalysis bool) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{client: client, model: model, includeAnalysis: includeAnalysis}, nil
}

// Stream opens one generation request and yields the response text fragment by
// fragment as the model produces them. The sequence is lazy, finite and
// non-restartable: an upstream error ends it at the point of occurrence, and a
// caller that stops iterating simply stops consuming — no explicit cancel is
// sent beyond ctx.
func (c *Client) Stream(ctx context.Context, cfg GenerationConfig) iter.Seq2[string, error] {
	prompt := BuildPrompt(cfg)
	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(c.includeAnalysis),
	}

	return func(yield func(string, error) bool) {
		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, genai.Text(prompt), genCfg) {
			if err != nil {
				yield("", err)
				return
			}
			if text := resp.Text(); text != "" {
				if !yield(text, nil) {
					return
				}
			}
		}
	}
}
