package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const (
	DefaultModel   = "gpt-oss:20b"
	DefaultTimeout = 360 * time.Second
)

// Client wraps the Ollama API client as the summarization engine. The client
// is constructed once at startup and shared read-only by all requests.
type Client struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// New creates a new Ollama client
func New(ollamaURL, model string) (*Client, error) {
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}
	if model == "" {
		model = DefaultModel
	}

	baseURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	client := api.NewClient(baseURL, http.DefaultClient)

	return &Client{
		client:  client,
		model:   model,
		timeout: DefaultTimeout,
	}, nil
}

// GenerateResponse generates a response from the model
func (c *Client) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	slog.Debug("ollama request", "model", c.model, "timeout", c.timeout)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: new(bool), // false
	}

	var response strings.Builder
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		response.WriteString(resp.Response)
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	result := strings.TrimSpace(response.String())
	slog.Debug("ollama response received", "chars", len(result))
	return result, nil
}

// Summarize produces an abstractive summary of the text bounded by the given
// word counts. The caller handles chunking; this summarizes one chunk.
func (c *Client) Summarize(ctx context.Context, text string, maxWords, minWords int) (string, error) {
	prompt := fmt.Sprintf(`Summarize the following text.

Requirements:
- Write between %d and %d words
- Cover the main points and key facts only
- Use simple, clear language
- Do NOT use numbering or bullet points
- Do NOT provide meta-commentary (e.g., "the text has...", "this article discusses...")
- Return ONLY the summary text, nothing else

Text:
%s

Summary:`, minWords, maxWords, text)

	return c.GenerateResponse(ctx, prompt)
}
