// internal/synthesis/strategy.go
package synthesis

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"synthgen/internal/common/logger"
	"synthgen/internal/common/metrics"
	"synthgen/internal/dataset"
	"synthgen/internal/genai"
	"synthgen/internal/planner"
)

// Source labels where an item's text came from.
type Source string

const (
	SourceGenerative Source = "generative"
	SourceTemplate   Source = "template"
)

// Strategy produces the free-text body for one work item. Implementations
// never fail: the generative strategy degrades to the template path on any
// error, so a broken backend costs variety, not records.
type Strategy interface {
	Synthesize(ctx context.Context, item planner.WorkItem, refined string, rng *rand.Rand) (string, Source)
}

// pickStrategy is the one place the template-vs-generative decision lives.
// Non-English items always take the template path so translations stay
// controlled; English items draw against the template ratio before the
// generator is consulted.
func (e *Engine) pickStrategy(item planner.WorkItem, rng *rand.Rand) Strategy {
	if item.Language != "" && item.Language != dataset.LanguageEnglish {
		return e.template
	}
	if rng.Float64() < e.cfg.TemplateRatio {
		return e.template
	}
	if e.generative == nil {
		return e.template
	}
	return e.generative
}

// templateStrategy serves pre-written text: native review banks for the
// supported languages, English banks (translated when needed) otherwise.
type templateStrategy struct {
	banks *Banks
}

func (s *templateStrategy) Synthesize(_ context.Context, item planner.WorkItem, _ string, rng *rand.Rand) (string, Source) {
	foreign := item.Language != "" && item.Language != dataset.LanguageEnglish

	if foreign && item.Stream == dataset.StreamReviews {
		if text := multilingualReview(rng, item.Language, item.Tone); text != "" {
			return text, SourceTemplate
		}
	}

	text := s.banks.Pick(rng, item.Stream, item.Tone, item.Category)
	if foreign {
		text = Translate(text, item.Language)
	}
	return text, SourceTemplate
}

// generativeStrategy calls the text backend with a randomized prompt and
// freshly sampled decoding parameters, falling back to templates when the
// result is unusable.
type generativeStrategy struct {
	generator genai.TextGenerator
	fallback  *templateStrategy
	minLength int
	logger    logger.Logger
}

func (s *generativeStrategy) Synthesize(ctx context.Context, item planner.WorkItem, refined string, rng *rand.Rand) (string, Source) {
	prompt := buildPrompt(rng, item.Stream, refined)
	params := sampleParams(rng)

	text, err := s.generator.Generate(ctx, prompt, params)
	if err != nil {
		metrics.SynthesisFallbacks.WithLabelValues(string(item.Stream), fallbackReason(err)).Inc()
		s.logger.WithError(err).Debug("generative path failed, using template", map[string]interface{}{
			"stream": string(item.Stream),
		})
		return s.fallback.Synthesize(ctx, item, refined, rng)
	}

	// Some backends echo the instruction back in front of the completion.
	text = squeeze(strings.TrimPrefix(strings.TrimSpace(text), prompt))
	if len(text) < s.minLength {
		metrics.SynthesisFallbacks.WithLabelValues(string(item.Stream), "short").Inc()
		return s.fallback.Synthesize(ctx, item, refined, rng)
	}
	return text, SourceGenerative
}

// fallbackReason maps a generation error onto a bounded metric label.
func fallbackReason(err error) string {
	switch {
	case errors.Is(err, genai.ErrGenerationTimeout):
		return "timeout"
	case errors.Is(err, genai.ErrEmptyCompletion):
		return "empty"
	default:
		return "error"
	}
}
