// internal/sink/schema_test.go
package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthgen/internal/dataset"
)

func newTestValidator(t *testing.T) *Validator {
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidator_ValidBundlePasses(t *testing.T) {
	assert.NoError(t, newTestValidator(t).ValidateBundle(testBundle()))
}

func TestValidator_RejectsContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		doc    string
	}{
		{
			name:   "rating out of range",
			stream: StreamReviews,
			doc: `{"review_id":"REV-001","customer_id":"CUST-001","product_id":"PROD-A1",
				"review_date":"2026-06-02T11:30:00","review_rating":6,"review_text":"x",
				"review_language":"english","specific_tone":"delighted","context":"","product":""}`,
		},
		{
			name:   "malformed customer id",
			stream: StreamInteractions,
			doc: `{"interaction_id":"INT-001","customer_id":"USER-1","interaction_date":"2026-06-01T10:00:00",
				"interaction_notes":"x","agent_id":"AG-007","interaction_type":"chat","specific_tone":"calm",
				"context":"","scenario":"","product":""}`,
		},
		{
			name:   "unknown ticket status",
			stream: StreamTickets,
			doc: `{"ticket_id":"TICKET-001","customer_id":"CUST-001","ticket_date":"2026-06-03T09:00:00",
				"ticket_description":"x","ticket_status":"lost","ticket_category":"technical",
				"ticket_subcategory":"crash","context":"","scenario":"","product":""}`,
		},
		{
			name:   "date instead of timestamp",
			stream: StreamReviews,
			doc: `{"review_id":"REV-001","customer_id":"CUST-001","product_id":"PROD-A1",
				"review_date":"2026-06-02","review_rating":4,"review_text":"x",
				"review_language":"english","specific_tone":"delighted","context":"","product":""}`,
		},
		{
			name:   "missing persona",
			stream: StreamCustomers,
			doc:    `{"customer_id":"CUST-001","sign_up_date":"2025-01-15","products_owned":2,"lifetime_value":500}`,
		},
		{
			name:   "unexpected extra field",
			stream: StreamCustomers,
			doc: `{"customer_id":"CUST-001","persona":"new","sign_up_date":"2025-01-15",
				"products_owned":2,"lifetime_value":500,"email":"a@b.c"}`,
		},
	}

	v := newTestValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.ValidateRaw(tt.stream, []byte(tt.doc)))
		})
	}
}

func TestValidator_FourDigitIDsAccepted(t *testing.T) {
	// Streams cap at 1000 items, so ids can outgrow the three-digit padding.
	doc := `{"ticket_id":"TICKET-1000","customer_id":"CUST-400","ticket_date":"2026-06-03T09:00:00",
		"ticket_description":"x","ticket_status":"open","ticket_category":"billing",
		"ticket_subcategory":"overcharge","context":"","scenario":"","product":""}`

	assert.NoError(t, newTestValidator(t).ValidateRaw(StreamTickets, []byte(doc)))
}

func TestValidator_UnknownStream(t *testing.T) {
	assert.Error(t, newTestValidator(t).ValidateRaw("orders", []byte(`{}`)))
}

func TestValidator_BundleReportsRecordIndex(t *testing.T) {
	bundle := testBundle()
	bundle.Reviews = append(bundle.Reviews, dataset.Review{
		ReviewID: "REV-002", CustomerID: "CUST-001", ProductID: "PROD-A1",
		ReviewDate: "2026-06-04T12:00:00", ReviewRating: 9, ReviewText: "x",
		ReviewLanguage: dataset.LanguageEnglish, SpecificTone: "calm",
	})

	err := newTestValidator(t).ValidateBundle(bundle)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}
