// internal/planner/planner.go
package planner

import (
	"fmt"
	"math/rand"
	"time"

	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

// Product-id letter bands per review tone.
const (
	positiveProductLetters = "ABCDEFGHIJK"
	negativeProductLetters = "LMNOPQRS"
	neutralProductLetters  = "TUVWXYZ"
)

// WorkItem is a fully-specified, order-independent generation request. The
// synthesis engine fills in text and refined metadata; nothing here changes
// after planning.
type WorkItem struct {
	Stream     dataset.StreamKind
	CustomerID string
	Timestamp  time.Time
	Tone       dataset.Tone           // interactions and reviews
	Category   dataset.TicketCategory // tickets
	Language   dataset.Language       // reviews and tickets
	BaseRating int                    // reviews
	ProductID  string                 // reviews
}

// Plan holds the planned work-item lists for all three streams.
type Plan struct {
	Interactions []WorkItem
	Reviews      []WorkItem
	Tickets      []WorkItem
}

// Items returns the work-item list for one stream.
func (p *Plan) Items(kind dataset.StreamKind) []WorkItem {
	switch kind {
	case dataset.StreamInteractions:
		return p.Interactions
	case dataset.StreamReviews:
		return p.Reviews
	case dataset.StreamTickets:
		return p.Tickets
	}
	return nil
}

// Planner turns a customer population into per-stream work-item lists,
// encoding the persona-correlation rules: tone quotas per stream, customer
// sub-slices per tone, timestamps, languages and base ratings.
type Planner struct {
	rng    *rand.Rand
	logger logger.Logger
}

// NewPlanner creates a planner drawing from the given generator.
func NewPlanner(rng *rand.Rand, log logger.Logger) *Planner {
	return &Planner{
		rng: rng,
		logger: log.With(map[string]interface{}{
			"component": "planner",
		}),
	}
}

// Plan computes the three stream plans for the population. An empty
// population yields empty plans.
func (p *Planner) Plan(customers []dataset.Customer) *Plan {
	ids := make([]string, len(customers))
	for i, c := range customers {
		ids[i] = c.CustomerID
	}

	plan := &Plan{
		Interactions: p.planInteractions(ids),
		Reviews:      p.planReviews(ids),
		Tickets:      p.planTickets(ids),
	}

	p.logger.Info("generation plan ready", map[string]interface{}{
		"customers":    len(customers),
		"interactions": len(plan.Interactions),
		"reviews":      len(plan.Reviews),
		"tickets":      len(plan.Tickets),
	})
	return plan
}

// TargetCount returns the planned item count for one stream:
// min(customers × multiplier, 1000).
func TargetCount(customerCount int, kind dataset.StreamKind) int {
	n := customerCount * kind.Multiplier()
	if n > dataset.MaxStreamItems {
		return dataset.MaxStreamItems
	}
	return n
}

func (p *Planner) planInteractions(ids []string) []WorkItem {
	total := TargetCount(len(ids), dataset.StreamInteractions)
	if total == 0 {
		return []WorkItem{}
	}

	// About 60% positive, 30% negative, 10% neutral
	positive, negative, neutral := splitQuota(total, 0.6, 0.3)

	items := make([]WorkItem, 0, total)
	items = p.appendToneItems(items, dataset.StreamInteractions, ids, dataset.TonePositive, positive, false)
	items = p.appendToneItems(items, dataset.StreamInteractions, ids, dataset.ToneNegative, negative, false)
	items = p.appendToneItems(items, dataset.StreamInteractions, ids, dataset.ToneNeutral, neutral, false)
	return items
}

func (p *Planner) planReviews(ids []string) []WorkItem {
	total := TargetCount(len(ids), dataset.StreamReviews)
	if total == 0 {
		return []WorkItem{}
	}

	// About 50% positive, 30% negative, 20% neutral
	positive, negative, neutral := splitQuota(total, 0.5, 0.3)

	items := make([]WorkItem, 0, total)
	items = p.appendToneItems(items, dataset.StreamReviews, ids, dataset.TonePositive, positive, true)
	items = p.appendToneItems(items, dataset.StreamReviews, ids, dataset.ToneNegative, negative, true)
	items = p.appendToneItems(items, dataset.StreamReviews, ids, dataset.ToneNeutral, neutral, true)
	return items
}

func (p *Planner) planTickets(ids []string) []WorkItem {
	total := TargetCount(len(ids), dataset.StreamTickets)
	if total == 0 {
		return []WorkItem{}
	}

	// technical 40%, billing 30%, account 20%, feature requests the rest
	technical := int(float64(total) * 0.4)
	billing := int(float64(total) * 0.3)
	account := int(float64(total) * 0.2)
	feature := total - technical - billing - account

	quotas := []struct {
		category dataset.TicketCategory
		count    int
	}{
		{dataset.CategoryTechnical, technical},
		{dataset.CategoryBilling, billing},
		{dataset.CategoryAccount, account},
		{dataset.CategoryFeatureRequest, feature},
	}

	// Ticket categories are not sentiments, so every category draws from the
	// full population.
	items := make([]WorkItem, 0, total)
	for _, q := range quotas {
		for i := 0; i < q.count; i++ {
			items = append(items, WorkItem{
				Stream:     dataset.StreamTickets,
				CustomerID: ids[p.rng.Intn(len(ids))],
				Timestamp:  p.randomDate(),
				Category:   q.category,
				Language:   p.randomLanguage(),
			})
		}
	}
	return items
}

// appendToneItems plans count items of one tone bucket, drawing customers
// from the tone's sub-slice. withProduct adds review-only fields.
func (p *Planner) appendToneItems(items []WorkItem, stream dataset.StreamKind, ids []string, tone dataset.Tone, count int, withProduct bool) []WorkItem {
	pool := toneSlice(ids, tone)
	for i := 0; i < count; i++ {
		item := WorkItem{
			Stream:     stream,
			CustomerID: pool[p.rng.Intn(len(pool))],
			Timestamp:  p.randomDate(),
			Tone:       tone,
		}
		if withProduct {
			item.Language = p.randomLanguage()
			item.BaseRating = p.baseRating(tone)
			item.ProductID = p.productID(tone)
		}
		items = append(items, item)
	}
	return items
}

// toneSlice returns the customer pool for a tone bucket: positive items come
// from the first 40% of the id ordering ("frequent" customers), negative
// from the last 40% ("problem" customers), neutral from everyone. A
// population too small to slice falls back to the full list.
func toneSlice(ids []string, tone dataset.Tone) []string {
	switch tone {
	case dataset.TonePositive:
		if cut := int(float64(len(ids)) * 0.4); cut > 0 {
			return ids[:cut]
		}
	case dataset.ToneNegative:
		if start := int(float64(len(ids)) * 0.6); start < len(ids) {
			return ids[start:]
		}
	}
	return ids
}

// splitQuota partitions total into three buckets by truncating ratios; the
// last bucket absorbs the rounding remainder.
func splitQuota(total int, firstRatio, secondRatio float64) (int, int, int) {
	first := int(float64(total) * firstRatio)
	second := int(float64(total) * secondRatio)
	return first, second, total - first - second
}

// randomDate returns a timestamp 1–180 days in the past.
func (p *Planner) randomDate() time.Time {
	return time.Now().AddDate(0, 0, -(1 + p.rng.Intn(180)))
}

// randomLanguage draws english ~80% of the time, otherwise one of the
// alternate languages uniformly.
func (p *Planner) randomLanguage() dataset.Language {
	if p.rng.Float64() < 0.8 {
		return dataset.LanguageEnglish
	}
	alternates := dataset.AlternateLanguages()
	return alternates[p.rng.Intn(len(alternates))]
}

// baseRating draws from the tone's band; jitter is applied later during
// record assembly.
func (p *Planner) baseRating(tone dataset.Tone) int {
	switch tone {
	case dataset.TonePositive:
		return 4 + p.rng.Intn(2)
	case dataset.ToneNegative:
		return 1 + p.rng.Intn(2)
	default:
		return 3
	}
}

// productID draws a product from the tone's letter band.
func (p *Planner) productID(tone dataset.Tone) string {
	letters := neutralProductLetters
	switch tone {
	case dataset.TonePositive:
		letters = positiveProductLetters
	case dataset.ToneNegative:
		letters = negativeProductLetters
	}
	return fmt.Sprintf("PROD-%c%d", letters[p.rng.Intn(len(letters))], 1+p.rng.Intn(10))
}
