// internal/synthesis/translate_test.go
package synthesis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"synthgen/internal/dataset"
)

// ==========================
// Phrase Substitution Tests
// ==========================

func TestTranslate_SubstitutesPhrases(t *testing.T) {
	text := "I'm very satisfied with this product. Excellent value for money."

	tests := []struct {
		language dataset.Language
		want     []string
	}{
		{dataset.LanguageSpanish, []string{"muy satisfecho", "excelente"}},
		{dataset.LanguageFrench, []string{"très satisfait", "excellent"}},
		{dataset.LanguageGerman, []string{"sehr zufrieden", "ausgezeichnet"}},
		{dataset.LanguageItalian, []string{"molto soddisfatto", "eccellente"}},
		{dataset.LanguagePortuguese, []string{"muito satisfeito", "excelente"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.language), func(t *testing.T) {
			translated := Translate(text, tt.language)
			for _, phrase := range tt.want {
				assert.Contains(t, translated, phrase)
			}
		})
	}
}

func TestTranslate_CaseInsensitive(t *testing.T) {
	translated := Translate("EXCELLENT product, Easy To Use.", dataset.LanguageSpanish)

	assert.Contains(t, translated, "excelente")
	assert.Contains(t, translated, "fácil de usar")
	assert.NotContains(t, translated, "EXCELLENT")
}

func TestTranslate_EnglishPassthrough(t *testing.T) {
	text := "The product works as expected."

	assert.Equal(t, text, Translate(text, dataset.LanguageEnglish))
}

func TestTranslate_UnknownLanguageUnchanged(t *testing.T) {
	text := "The product works as expected."

	assert.Equal(t, text, Translate(text, dataset.Language("klingon")))
}

// ==========================
// Generic Fallback Tests
// ==========================

func TestTranslate_GenericFallbackBySentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "positive marker",
			text: "The team was great throughout.",
			want: "Excelente producto con muy buenas características.",
		},
		{
			name: "negative marker",
			text: "This was a bad experience overall.",
			want: "Producto decepcionante con varios problemas.",
		},
		{
			name: "no markers",
			text: "The meeting covered three topics.",
			want: "Producto básico que cumple su función.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.text, dataset.LanguageSpanish))
		})
	}
}

func TestSniffSentiment(t *testing.T) {
	tests := []struct {
		text string
		want dataset.Tone
	}{
		{"This is a GOOD result", dataset.TonePositive},
		{"poor outcome", dataset.ToneNegative},
		{"great but poor", dataset.TonePositive},
		{"nothing to report", dataset.ToneNeutral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sniffSentiment(tt.text), "text: %s", tt.text)
	}
}

// ==========================
// Multilingual Bank Tests
// ==========================

func TestMultilingualReview_CoversAllLanguagesAndTones(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	for _, lang := range dataset.AlternateLanguages() {
		for _, tone := range []dataset.Tone{dataset.TonePositive, dataset.ToneNegative, dataset.ToneNeutral} {
			text := multilingualReview(rng, lang, tone)
			assert.NotEmpty(t, text, "%s/%s", lang, tone)
			assert.Contains(t, multilingualReviews[lang][tone], text)
		}
	}
}

func TestMultilingualReview_UnknownLanguageEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	assert.Empty(t, multilingualReview(rng, dataset.LanguageEnglish, dataset.TonePositive))
	assert.Empty(t, multilingualReview(rng, dataset.Language("klingon"), dataset.TonePositive))
}
