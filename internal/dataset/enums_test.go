// internal/dataset/enums_test.go
package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamKind_IDPrefix(t *testing.T) {
	assert.Equal(t, "INT", StreamInteractions.IDPrefix())
	assert.Equal(t, "REV", StreamReviews.IDPrefix())
	assert.Equal(t, "TICKET", StreamTickets.IDPrefix())
	assert.Empty(t, StreamKind("orders").IDPrefix())
}

func TestStreamKind_Multiplier(t *testing.T) {
	assert.Equal(t, 3, StreamInteractions.Multiplier())
	assert.Equal(t, 2, StreamReviews.Multiplier())
	assert.Equal(t, 2, StreamTickets.Multiplier())
	assert.Zero(t, StreamKind("orders").Multiplier())
}

func TestPersonas_CompleteAndProfiled(t *testing.T) {
	personas := Personas()

	assert.Len(t, personas, 5)
	for _, p := range personas {
		profile, ok := PersonaProfiles[p]
		assert.True(t, ok, "persona %s has no profile", p)
		assert.GreaterOrEqual(t, profile.RatingMin, 1)
		assert.LessOrEqual(t, profile.RatingMax, 5)
		assert.LessOrEqual(t, profile.RatingMin, profile.RatingMax)
	}
}

func TestAlternateLanguages_ExcludeEnglish(t *testing.T) {
	alternates := AlternateLanguages()

	assert.Len(t, alternates, 5)
	assert.NotContains(t, alternates, LanguageEnglish)
}

func TestTicketStatuses_HeadIsOpenLike(t *testing.T) {
	// The age-weighted sampler draws fresh tickets from the head of the
	// list; the two terminal states must sit past the young-ticket window's
	// opening entries.
	assert.Equal(t, "open", TicketStatuses[0])
	assert.Equal(t, "in-progress", TicketStatuses[1])
	assert.Contains(t, TicketStatuses[2:], "resolved")
	assert.Contains(t, TicketStatuses[2:], "closed")
	assert.GreaterOrEqual(t, len(TicketStatuses), 12, "the mid-age window spans indexes 2..12")
}

func TestTicketCategories_QuotaOrder(t *testing.T) {
	assert.Equal(t, []TicketCategory{
		CategoryTechnical, CategoryBilling, CategoryAccount, CategoryFeatureRequest,
	}, TicketCategories())
}
