// internal/genai/openai.go
package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"synthgen/internal/common/config"
	"synthgen/internal/common/logger"
	"synthgen/internal/common/metrics"
)

// systemMessage keeps completions on-task; the engine strips any prompt echo
// from the returned text anyway.
const systemMessage = "You write short, realistic customer-facing text for demo datasets. Respond with the requested text only, no preamble."

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	logger     logger.Logger
}

// NewClient creates a generative text client. An empty endpoint means the
// default OpenAI API; local backends (vLLM, llama.cpp, LocalAI) plug in via
// cfg.Endpoint.
func NewClient(cfg config.GenAIConfig, log logger.Logger) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")
	}

	return &Client{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      cfg.Model,
		timeout:    config.GetDuration(cfg.Timeout),
		maxRetries: cfg.MaxRetries,
		logger: log.With(map[string]interface{}{
			"component": "genai",
			"model":     cfg.Model,
		}),
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one prompt and returns the completion text. Transient
// failures are retried with exponential backoff; the context plus the
// configured timeout bound the whole call.
func (c *Client) Generate(ctx context.Context, prompt string, params SampleParams) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   params.MaxTokens,
		Temperature: float32(params.Temperature),
		TopP:        float32(params.TopP),
		// The chat API has no top-k knob; the repetition penalty maps onto
		// the frequency penalty (1.0 = neutral in sampler terms, 0 here).
		FrequencyPenalty: float32(params.RepetitionPenalty - 1.0),
		N:                1,
	}

	start := time.Now()
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Apply exponential backoff
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
				// Continue with retry
			case <-callCtx.Done():
				metrics.GenAIRequests.WithLabelValues("timeout").Inc()
				return "", fmt.Errorf("%w: %v", ErrGenerationTimeout, callCtx.Err())
			}
		}

		resp, err := c.client.CreateChatCompletion(callCtx, req)
		if err != nil {
			lastErr = err
			if callCtx.Err() != nil {
				metrics.GenAIRequests.WithLabelValues("timeout").Inc()
				return "", fmt.Errorf("%w: %v", ErrGenerationTimeout, err)
			}
			metrics.GenAIRequests.WithLabelValues("error").Inc()
			continue
		}

		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			lastErr = ErrEmptyCompletion
			metrics.GenAIRequests.WithLabelValues("empty").Inc()
			continue
		}

		text := strings.TrimSpace(resp.Choices[0].Message.Content)
		metrics.GenAIRequests.WithLabelValues("ok").Inc()
		c.logger.Debug("completion received", map[string]interface{}{
			"prompt_len":     len(prompt),
			"completion_len": len(text),
			"attempts":       attempt + 1,
			"elapsed_ms":     time.Since(start).Milliseconds(),
		})
		return text, nil
	}

	c.logger.Error("generation failed after retries", map[string]interface{}{
		"attempts": c.maxRetries + 1,
		"error":    lastErr.Error(),
	})
	return "", fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
}
