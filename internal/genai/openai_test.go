// internal/genai/openai_test.go
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"synthgen/internal/common/config"
	"synthgen/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestGenAIConfig(endpoint string) config.GenAIConfig {
	return config.GenAIConfig{
		Endpoint:   endpoint,
		Model:      "distilgpt2",
		APIKey:     "test-key",
		Timeout:    5000,
		MaxRetries: 1,
	}
}

func defaultParams() SampleParams {
	return SampleParams{
		MaxTokens:         180,
		Temperature:       0.9,
		TopP:              0.9,
		TopK:              50,
		RepetitionPenalty: 1.2,
	}
}

func chatCompletionResponse(text string) string {
	response := map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "distilgpt2",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]interface{}{"role": "assistant", "content": text},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]interface{}{
			"prompt_tokens":     12,
			"completion_tokens": 24,
			"total_tokens":      36,
		},
	}
	data, _ := json.Marshal(response)
	return string(data)
}

// ==========================
// Constructor Tests
// ==========================

func TestNewClient_RequiresModel(t *testing.T) {
	cfg := createTestGenAIConfig("http://localhost:9999")
	cfg.Model = ""

	client, err := NewClient(cfg, logger.NewNoOpLogger())

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "model is required")
}

func TestNewClient_TrimsEndpointSlash(t *testing.T) {
	cfg := createTestGenAIConfig("http://localhost:9999/v1/")

	client, err := NewClient(cfg, logger.NewNoOpLogger())

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "distilgpt2", client.Model())
}

// ==========================
// Core Functionality Tests
// ==========================

func TestClient_Generate_Success(t *testing.T) {
	tests := []struct {
		name         string
		prompt       string
		completion   string
		expectedText string
	}{
		{
			name:         "plain completion",
			prompt:       "Generate a realistic customer service interaction note.",
			completion:   "Customer called about onboarding and left satisfied with the walkthrough.",
			expectedText: "Customer called about onboarding and left satisfied with the walkthrough.",
		},
		{
			name:         "completion with surrounding whitespace",
			prompt:       "Write a product review.",
			completion:   "  The analytics platform exceeded expectations in every way.  ",
			expectedText: "The analytics platform exceeded expectations in every way.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify request
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)

				var reqBody map[string]interface{}
				json.NewDecoder(r.Body).Decode(&reqBody)
				assert.Equal(t, "distilgpt2", reqBody["model"])
				assert.Equal(t, float64(180), reqBody["max_tokens"])
				assert.InDelta(t, 0.9, reqBody["temperature"], 0.001)
				assert.InDelta(t, 0.9, reqBody["top_p"], 0.001)
				assert.InDelta(t, 0.2, reqBody["frequency_penalty"], 0.001)

				messages, ok := reqBody["messages"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, messages, 2)
				userMsg := messages[1].(map[string]interface{})
				assert.Equal(t, "user", userMsg["role"])
				assert.Equal(t, tt.prompt, userMsg["content"])

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(chatCompletionResponse(tt.completion)))
			}))
			defer server.Close()

			client, err := NewClient(createTestGenAIConfig(server.URL), logger.NewTestLogger(t))
			assert.NoError(t, err)

			text, err := client.Generate(context.Background(), tt.prompt, defaultParams())

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
		})
	}
}

func TestClient_Generate_RetriesThenSucceeds(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":{"message":"backend overloaded"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionResponse("Second attempt produced this text.")))
	}))
	defer server.Close()

	cfg := createTestGenAIConfig(server.URL)
	cfg.MaxRetries = 2
	client, err := NewClient(cfg, logger.NewTestLogger(t))
	assert.NoError(t, err)

	text, err := client.Generate(context.Background(), "prompt", defaultParams())

	assert.NoError(t, err)
	assert.Equal(t, "Second attempt produced this text.", text)
	assert.Equal(t, 2, calls)
}

func TestClient_Generate_ExhaustsRetries(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"backend down"}}`)
	}))
	defer server.Close()

	cfg := createTestGenAIConfig(server.URL)
	cfg.MaxRetries = 2
	client, err := NewClient(cfg, logger.NewTestLogger(t))
	assert.NoError(t, err)

	text, err := client.Generate(context.Background(), "prompt", defaultParams())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Empty(t, text)
	assert.Equal(t, 3, calls) // initial attempt + 2 retries
}

func TestClient_Generate_EmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionResponse("   ")))
	}))
	defer server.Close()

	client, err := NewClient(createTestGenAIConfig(server.URL), logger.NewTestLogger(t))
	assert.NoError(t, err)

	text, err := client.Generate(context.Background(), "prompt", defaultParams())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Empty(t, text)
}

func TestClient_Generate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(10 * time.Second):
			return
		}
	}))
	defer server.Close()

	cfg := createTestGenAIConfig(server.URL)
	cfg.Timeout = 50 // milliseconds
	client, err := NewClient(cfg, logger.NewTestLogger(t))
	assert.NoError(t, err)

	start := time.Now()
	text, err := client.Generate(context.Background(), "prompt", defaultParams())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationTimeout))
	assert.Empty(t, text)
	assert.Less(t, time.Since(start), 2*time.Second)
}

// ==========================
// Model Registry Tests
// ==========================

func TestKnownModels(t *testing.T) {
	tests := []struct {
		name        string
		model       string
		known       bool
		description string
	}{
		{
			name:        "distilgpt2 is registered",
			model:       "distilgpt2",
			known:       true,
			description: "Small, fast distilled version of GPT-2 (82M parameters)",
		},
		{
			name:        "opt-125m is registered",
			model:       "facebook/opt-125m",
			known:       true,
			description: "Tiny OPT model from Meta (125M parameters)",
		},
		{
			name:        "unknown model falls back to generic description",
			model:       "gpt-oss-36b",
			known:       false,
			description: "Custom model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.known, IsKnownModel(tt.model))
			assert.Equal(t, tt.description, ModelDescription(tt.model))
		})
	}
}
