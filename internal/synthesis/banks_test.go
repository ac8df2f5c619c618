// internal/synthesis/banks_test.go
package synthesis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"synthgen/internal/dataset"
)

// ==========================
// Bank Coverage Tests
// ==========================

func TestDefaultBanks_Coverage(t *testing.T) {
	banks := DefaultBanks()

	for _, tone := range []dataset.Tone{dataset.TonePositive, dataset.ToneNegative, dataset.ToneNeutral} {
		assert.Len(t, banks.interactions[tone], 10, "interaction bank for %s", tone)
		assert.Len(t, banks.reviews[tone], 15, "review bank for %s", tone)
	}
	for _, category := range dataset.TicketCategories() {
		assert.Len(t, banks.tickets[category], 10, "ticket bank for %s", category)
	}
	assert.Len(t, banks.generic, 3)
}

func TestDefaultBanks_NoEmptyTemplates(t *testing.T) {
	banks := DefaultBanks()

	all := banks.generic
	for _, bank := range banks.interactions {
		all = append(all, bank...)
	}
	for _, bank := range banks.reviews {
		all = append(all, bank...)
	}
	for _, bank := range banks.tickets {
		all = append(all, bank...)
	}

	for _, text := range all {
		assert.NotEmpty(t, text)
	}
}

// ==========================
// Bank Lookup Tests
// ==========================

func TestBanks_Pick(t *testing.T) {
	banks := DefaultBanks()

	tests := []struct {
		name     string
		stream   dataset.StreamKind
		tone     dataset.Tone
		category dataset.TicketCategory
		wantBank []string
	}{
		{
			name:     "positive interaction",
			stream:   dataset.StreamInteractions,
			tone:     dataset.TonePositive,
			wantBank: interactionTemplates[dataset.TonePositive],
		},
		{
			name:     "negative review",
			stream:   dataset.StreamReviews,
			tone:     dataset.ToneNegative,
			wantBank: reviewTemplates[dataset.ToneNegative],
		},
		{
			name:     "billing ticket",
			stream:   dataset.StreamTickets,
			category: dataset.CategoryBilling,
			wantBank: ticketTemplates[dataset.CategoryBilling],
		},
		{
			name:     "feature request ticket",
			stream:   dataset.StreamTickets,
			category: dataset.CategoryFeatureRequest,
			wantBank: ticketTemplates[dataset.CategoryFeatureRequest],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 50; i++ {
				text := banks.Pick(rng, tt.stream, tt.tone, tt.category)
				assert.Contains(t, tt.wantBank, text)
			}
		})
	}
}

func TestBanks_Pick_UnknownKeyUsesGeneric(t *testing.T) {
	banks := DefaultBanks()
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 20; i++ {
		text := banks.Pick(rng, dataset.StreamInteractions, dataset.Tone("mixed"), "")
		assert.Contains(t, genericTemplates, text)
	}

	for i := 0; i < 20; i++ {
		text := banks.Pick(rng, dataset.StreamTickets, "", dataset.TicketCategory("shipping"))
		assert.Contains(t, genericTemplates, text)
	}
}

// ==========================
// Refinement Tests
// ==========================

func TestRefineTone_PerStreamVocabularies(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		refined := refineTone(rng, dataset.StreamInteractions, dataset.TonePositive)
		assert.Contains(t, interactionTones[dataset.TonePositive], refined)
	}
	for i := 0; i < 50; i++ {
		refined := refineTone(rng, dataset.StreamReviews, dataset.ToneNeutral)
		assert.Contains(t, reviewTones[dataset.ToneNeutral], refined)
	}
}

func TestRefineTone_UnknownFallsBackToCoarse(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	assert.Equal(t, "mixed", refineTone(rng, dataset.StreamInteractions, dataset.Tone("mixed")))
	assert.Equal(t, "positive", refineTone(rng, dataset.StreamTickets, dataset.TonePositive))
}

func TestRefineCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, category := range dataset.TicketCategories() {
		sub := refineCategory(rng, category)
		assert.Contains(t, ticketSubcategories[category], sub)
	}
	assert.Equal(t, "shipping", refineCategory(rng, dataset.TicketCategory("shipping")))
}
