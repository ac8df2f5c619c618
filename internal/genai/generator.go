// internal/genai/generator.go
package genai

import (
	"context"
	"errors"
)

var (
	ErrGenerationFailed  = errors.New("GENERATION_FAILED")
	ErrGenerationTimeout = errors.New("GENERATION_TIMEOUT")
	ErrEmptyCompletion   = errors.New("EMPTY_COMPLETION")
)

// SampleParams carries the decoding parameters sampled fresh for every call.
type SampleParams struct {
	MaxTokens         int
	Temperature       float64
	TopP              float64
	TopK              int
	RepetitionPenalty float64
}

// TextGenerator is the generative text capability: (prompt, params) -> text
// or error. Any backend satisfying this contract is interchangeable.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params SampleParams) (string, error)
	Model() string
}

// KnownModels maps the supported small-model names to a short description,
// shown at startup and used to reject typos when no custom endpoint is set.
var KnownModels = map[string]string{
	"distilgpt2":                        "Small, fast distilled version of GPT-2 (82M parameters)",
	"microsoft/MiniLM-L12-H384-uncased": "Small and fast model by Microsoft (33M parameters)",
	"distilroberta-base":                "Lightweight RoBERTa model (82M parameters)",
	"facebook/opt-125m":                 "Tiny OPT model from Meta (125M parameters)",
}

// IsKnownModel reports whether name is in the built-in model registry.
func IsKnownModel(name string) bool {
	_, ok := KnownModels[name]
	return ok
}

// ModelDescription returns the registry description for name, or a generic
// label for models served by a custom endpoint.
func ModelDescription(name string) string {
	if desc, ok := KnownModels[name]; ok {
		return desc
	}
	return "Custom model"
}
