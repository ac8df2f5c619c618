// internal/planner/planner_test.go
package planner

import (
	"fmt"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestPlanner(t *testing.T, seed int64) *Planner {
	return NewPlanner(rand.New(rand.NewSource(seed)), logger.NewTestLogger(t))
}

func testCustomers(n int) []dataset.Customer {
	customers := make([]dataset.Customer, n)
	for i := range customers {
		customers[i] = dataset.Customer{
			CustomerID: fmt.Sprintf("CUST-%03d", i+1),
			Persona:    dataset.PersonaNeutral,
		}
	}
	return customers
}

func toneCounts(items []WorkItem) map[dataset.Tone]int {
	counts := make(map[dataset.Tone]int)
	for _, item := range items {
		counts[item.Tone]++
	}
	return counts
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// ==========================
// Quota Tests
// ==========================

func TestPlanner_Plan_StreamCounts(t *testing.T) {
	tests := []struct {
		name                 string
		customers            int
		expectedInteractions int
		expectedReviews      int
		expectedTickets      int
	}{
		{name: "single customer", customers: 1, expectedInteractions: 3, expectedReviews: 2, expectedTickets: 2},
		{name: "ten customers", customers: 10, expectedInteractions: 30, expectedReviews: 20, expectedTickets: 20},
		{name: "cap reached for interactions", customers: 400, expectedInteractions: 1000, expectedReviews: 800, expectedTickets: 800},
		{name: "cap reached everywhere", customers: 600, expectedInteractions: 1000, expectedReviews: 1000, expectedTickets: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := newTestPlanner(t, 42).Plan(testCustomers(tt.customers))

			assert.Len(t, plan.Interactions, tt.expectedInteractions)
			assert.Len(t, plan.Reviews, tt.expectedReviews)
			assert.Len(t, plan.Tickets, tt.expectedTickets)
		})
	}
}

func TestPlanner_Plan_EmptyPopulation(t *testing.T) {
	plan := newTestPlanner(t, 1).Plan(nil)

	assert.Empty(t, plan.Interactions)
	assert.Empty(t, plan.Reviews)
	assert.Empty(t, plan.Tickets)
}

func TestPlanner_Plan_ToneQuotas(t *testing.T) {
	plan := newTestPlanner(t, 7).Plan(testCustomers(10))

	interactions := toneCounts(plan.Interactions)
	assert.Equal(t, 18, interactions[dataset.TonePositive]) // int(30 * 0.6)
	assert.Equal(t, 9, interactions[dataset.ToneNegative])  // int(30 * 0.3)
	assert.Equal(t, 3, interactions[dataset.ToneNeutral])   // remainder

	reviews := toneCounts(plan.Reviews)
	assert.Equal(t, 10, reviews[dataset.TonePositive])
	assert.Equal(t, 6, reviews[dataset.ToneNegative])
	assert.Equal(t, 4, reviews[dataset.ToneNeutral])
}

func TestPlanner_Plan_TicketCategoryQuotas(t *testing.T) {
	plan := newTestPlanner(t, 7).Plan(testCustomers(10))

	counts := make(map[dataset.TicketCategory]int)
	for _, item := range plan.Tickets {
		counts[item.Category]++
	}

	assert.Equal(t, 8, counts[dataset.CategoryTechnical]) // int(20 * 0.4)
	assert.Equal(t, 6, counts[dataset.CategoryBilling])
	assert.Equal(t, 4, counts[dataset.CategoryAccount])
	assert.Equal(t, 2, counts[dataset.CategoryFeatureRequest]) // remainder
}

// ==========================
// Customer Assignment Tests
// ==========================

func TestPlanner_Plan_ToneSlices(t *testing.T) {
	customers := testCustomers(10)
	plan := newTestPlanner(t, 11).Plan(customers)

	frequent := idSet([]string{"CUST-001", "CUST-002", "CUST-003", "CUST-004"})
	problem := idSet([]string{"CUST-007", "CUST-008", "CUST-009", "CUST-010"})
	all := idSet(make([]string, 0))
	for _, c := range customers {
		all[c.CustomerID] = true
	}

	check := func(items []WorkItem) {
		for _, item := range items {
			switch item.Tone {
			case dataset.TonePositive:
				assert.True(t, frequent[item.CustomerID], "positive item drawn outside frequent slice: %s", item.CustomerID)
			case dataset.ToneNegative:
				assert.True(t, problem[item.CustomerID], "negative item drawn outside problem slice: %s", item.CustomerID)
			default:
				assert.True(t, all[item.CustomerID])
			}
		}
	}
	check(plan.Interactions)
	check(plan.Reviews)

	for _, item := range plan.Tickets {
		assert.True(t, all[item.CustomerID])
	}
}

func TestPlanner_Plan_TinyPopulationFallsBackToAll(t *testing.T) {
	// One customer: no 40% slice exists, so every bucket draws from everyone.
	plan := newTestPlanner(t, 3).Plan(testCustomers(1))

	for _, item := range plan.Interactions {
		assert.Equal(t, "CUST-001", item.CustomerID)
	}
	for _, item := range plan.Reviews {
		assert.Equal(t, "CUST-001", item.CustomerID)
	}
}

// ==========================
// Field Sampling Tests
// ==========================

func TestPlanner_Plan_ReviewFields(t *testing.T) {
	plan := newTestPlanner(t, 21).Plan(testCustomers(50))

	productPatterns := map[dataset.Tone]*regexp.Regexp{
		dataset.TonePositive: regexp.MustCompile(`^PROD-[A-K](10|[1-9])$`),
		dataset.ToneNegative: regexp.MustCompile(`^PROD-[L-S](10|[1-9])$`),
		dataset.ToneNeutral:  regexp.MustCompile(`^PROD-[T-Z](10|[1-9])$`),
	}

	for _, item := range plan.Reviews {
		switch item.Tone {
		case dataset.TonePositive:
			assert.Contains(t, []int{4, 5}, item.BaseRating)
		case dataset.ToneNegative:
			assert.Contains(t, []int{1, 2}, item.BaseRating)
		default:
			assert.Equal(t, 3, item.BaseRating)
		}
		assert.Regexp(t, productPatterns[item.Tone], item.ProductID)
		assert.NotEmpty(t, item.Language)
	}
}

func TestPlanner_Plan_LanguageDistribution(t *testing.T) {
	plan := newTestPlanner(t, 5).Plan(testCustomers(400))

	alternates := make(map[dataset.Language]bool)
	for _, l := range dataset.AlternateLanguages() {
		alternates[l] = true
	}

	english := 0
	for _, item := range plan.Reviews {
		if item.Language == dataset.LanguageEnglish {
			english++
		} else {
			assert.True(t, alternates[item.Language], "unexpected language %q", item.Language)
		}
	}

	fraction := float64(english) / float64(len(plan.Reviews))
	assert.Greater(t, fraction, 0.7)
	assert.Less(t, fraction, 0.9)
}

func TestPlanner_Plan_TimestampsWithinWindow(t *testing.T) {
	plan := newTestPlanner(t, 13).Plan(testCustomers(20))

	now := time.Now()
	for _, items := range [][]WorkItem{plan.Interactions, plan.Reviews, plan.Tickets} {
		for _, item := range items {
			age := now.Sub(item.Timestamp)
			assert.Greater(t, age, 23*time.Hour, "timestamp newer than one day: %s", item.Timestamp)
			assert.Less(t, age, 181*24*time.Hour, "timestamp older than 180 days: %s", item.Timestamp)
		}
	}
}

func TestPlanner_Plan_DeterministicUnderFixedSeed(t *testing.T) {
	customers := testCustomers(30)

	first := newTestPlanner(t, 77).Plan(customers)
	second := newTestPlanner(t, 77).Plan(customers)

	// Timestamps derive from the wall clock, so compare everything else.
	strip := func(plan *Plan) *Plan {
		copied := &Plan{}
		for _, src := range []struct {
			in  []WorkItem
			out *[]WorkItem
		}{
			{plan.Interactions, &copied.Interactions},
			{plan.Reviews, &copied.Reviews},
			{plan.Tickets, &copied.Tickets},
		} {
			for _, item := range src.in {
				item.Timestamp = time.Time{}
				*src.out = append(*src.out, item)
			}
		}
		return copied
	}

	assert.Equal(t, strip(first), strip(second))
}

func TestTargetCount(t *testing.T) {
	assert.Equal(t, 30, TargetCount(10, dataset.StreamInteractions))
	assert.Equal(t, 20, TargetCount(10, dataset.StreamReviews))
	assert.Equal(t, 20, TargetCount(10, dataset.StreamTickets))
	assert.Equal(t, 1000, TargetCount(500, dataset.StreamInteractions))
	assert.Equal(t, 0, TargetCount(0, dataset.StreamTickets))
}
