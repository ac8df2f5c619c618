// internal/synthesis/engine.go
package synthesis

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"synthgen/internal/common/logger"
	"synthgen/internal/common/metrics"
	"synthgen/internal/dataset"
	"synthgen/internal/genai"
	"synthgen/internal/planner"
)

// Config carries the per-run synthesis knobs. It is never mutated after
// construction; every component reads the same values.
type Config struct {
	// TemplateRatio is the probability an English item uses a template
	// instead of the generative backend. Expected to be within [0, 1].
	TemplateRatio float64
	// MinTextLength rejects generative completions shorter than this;
	// rejected items fall back to a template.
	MinTextLength int
}

// sourceTally counts text sources for one stream. Safe for concurrent use.
type sourceTally struct {
	generative atomic.Int64
	template   atomic.Int64
}

// Engine synthesizes free text and assembles full records for all three
// streams. It holds no per-item state: all randomness comes from the
// *rand.Rand the caller passes in, so concurrent builds are safe as long
// as each task owns its generator.
type Engine struct {
	cfg        Config
	template   Strategy
	generative Strategy
	logger     logger.Logger

	tallies map[dataset.StreamKind]*sourceTally
}

// NewEngine builds an engine. A nil generator forces the template path for
// every item; nil banks select the built-in English banks.
func NewEngine(cfg Config, gen genai.TextGenerator, banks *Banks, log logger.Logger) *Engine {
	if banks == nil {
		banks = DefaultBanks()
	}
	log = log.With(map[string]interface{}{
		"component": "synthesis",
	})

	tmpl := &templateStrategy{banks: banks}
	e := &Engine{
		cfg:      cfg,
		template: tmpl,
		logger:   log,
		tallies: map[dataset.StreamKind]*sourceTally{
			dataset.StreamInteractions: {},
			dataset.StreamReviews:      {},
			dataset.StreamTickets:      {},
		},
	}
	if gen != nil {
		e.generative = &generativeStrategy{
			generator: gen,
			fallback:  tmpl,
			minLength: cfg.MinTextLength,
			logger:    log,
		}
	}
	return e
}

// SourceCounts reports how many items of the stream used each text source
// so far.
func (e *Engine) SourceCounts(kind dataset.StreamKind) (generative, template int64) {
	t := e.tallies[kind]
	if t == nil {
		return 0, 0
	}
	return t.generative.Load(), t.template.Load()
}

// synthesize runs the policy and the selected strategy for one item and
// records the outcome.
func (e *Engine) synthesize(ctx context.Context, item planner.WorkItem, refined string, rng *rand.Rand) string {
	start := time.Now()
	text, source := e.pickStrategy(item, rng).Synthesize(ctx, item, refined, rng)

	metrics.SynthesisDuration.WithLabelValues(string(item.Stream)).Observe(time.Since(start).Seconds())
	metrics.ItemsGenerated.WithLabelValues(string(item.Stream), string(source)).Inc()
	if t := e.tallies[item.Stream]; t != nil {
		if source == SourceGenerative {
			t.generative.Add(1)
		} else {
			t.template.Add(1)
		}
	}
	return text
}

// BuildInteraction assembles one customer-interaction record.
func (e *Engine) BuildInteraction(ctx context.Context, item planner.WorkItem, rng *rand.Rand) (dataset.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Interaction{}, err
	}

	refined := refineTone(rng, item.Stream, item.Tone)
	interaction := dataset.Interaction{
		CustomerID:      item.CustomerID,
		InteractionDate: item.Timestamp.Format(dataset.TimeLayout),
		AgentID:         fmt.Sprintf("AG-%03d", 1+rng.Intn(100)),
		InteractionType: pick(rng, dataset.InteractionChannels),
		SpecificTone:    refined,
		Context:         pick(rng, interactionContexts),
		Scenario:        pick(rng, interactionScenarios),
		Product:         pick(rng, interactionProducts),
	}
	interaction.InteractionNotes = e.synthesize(ctx, item, refined, rng)
	return interaction, nil
}

// BuildReview assembles one product-review record.
func (e *Engine) BuildReview(ctx context.Context, item planner.WorkItem, rng *rand.Rand) (dataset.Review, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Review{}, err
	}

	refined := refineTone(rng, item.Stream, item.Tone)
	review := dataset.Review{
		CustomerID:     item.CustomerID,
		ProductID:      item.ProductID,
		ReviewDate:     item.Timestamp.Format(dataset.TimeLayout),
		ReviewRating:   jitterRating(rng, item.Tone, item.BaseRating),
		ReviewLanguage: item.Language,
		SpecificTone:   refined,
		Context:        pick(rng, reviewContexts),
		Product:        pick(rng, extendedProducts),
	}
	review.ReviewText = e.synthesize(ctx, item, refined, rng)
	return review, nil
}

// BuildTicket assembles one support-ticket record.
func (e *Engine) BuildTicket(ctx context.Context, item planner.WorkItem, rng *rand.Rand) (dataset.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Ticket{}, err
	}

	sub := refineCategory(rng, item.Category)
	ticket := dataset.Ticket{
		CustomerID:        item.CustomerID,
		TicketDate:        item.Timestamp.Format(dataset.TimeLayout),
		TicketStatus:      ticketStatus(rng, item.Timestamp),
		TicketCategory:    item.Category,
		TicketSubcategory: sub,
		Context:           pick(rng, ticketContexts),
		Scenario:          pick(rng, ticketScenarios),
		Product:           pick(rng, extendedProducts),
	}
	ticket.TicketDescription = e.synthesize(ctx, item, sub, rng)
	return ticket, nil
}

// jitterRating nudges some ratings inside their tone band so sentiment
// categories do not produce uniform scores. Exactly one draw happens per
// call, mirroring a first-match-wins chain.
func jitterRating(rng *rand.Rand, tone dataset.Tone, rating int) int {
	switch {
	case tone == dataset.TonePositive && rating == 5 && rng.Float64() < 0.4:
		return 4
	case tone == dataset.TonePositive && rating == 4 && rng.Float64() < 0.2:
		return 5
	case tone == dataset.ToneNegative && rating == 1 && rng.Float64() < 0.4:
		return 2
	case tone == dataset.ToneNegative && rating == 2 && rng.Float64() < 0.2:
		return 1
	case tone == dataset.ToneNeutral && rng.Float64() < 0.3:
		return 2 + 2*rng.Intn(2)
	}
	return rating
}

// ticketStatus samples a status weighted by ticket age: new tickets skew
// toward open-like states, old ones toward resolved and closed.
func ticketStatus(rng *rand.Rand, opened time.Time) string {
	days := int(time.Since(opened).Hours() / 24)

	var options []string
	switch {
	case days < 7:
		options = dataset.TicketStatuses[:8]
	case days < 30:
		options = dataset.TicketStatuses[2:12]
	default:
		options = append(append([]string{}, dataset.TicketStatuses[2:]...),
			"resolved", "closed", "resolved", "closed", "resolved", "closed")
	}
	return options[rng.Intn(len(options))]
}

// Record-level tag vocabularies. Broader than the prompt vocabularies:
// these land on the records themselves so downstream analytics have
// something to group by.
var (
	interactionContexts = []string{
		"enterprise", "small business", "non-profit", "educational", "technical", "non-technical", "new", "long-term",
		"international", "remote", "startup", "healthcare", "financial", "government", "retail", "manufacturing",
	}

	interactionScenarios = []string{
		"having trouble with setup", "requesting a refund", "asking how to use advanced features",
		"reporting a bug", "requesting documentation", "inquiring about pricing", "upgrading their account",
		"asking about compatibility", "struggling with integration", "needing help with customization",
		"exploring new features", "facing performance issues", "requiring assistance with migration",
		"following up on previous issues", "requesting training", "providing feedback",
	}

	interactionProducts = []string{
		"CRM software", "analytics platform", "billing system", "cloud storage solution", "marketing automation tool",
		"project management tool", "database service", "communication platform", "security suite", "productivity app",
		"customer support system", "content management system", "e-commerce platform", "inventory management system",
		"HR software", "accounting software", "data visualization tool", "mobile application", "API service",
	}

	// Reviews and tickets draw from the interaction catalog plus a few
	// extra product types.
	extendedProducts = append(append([]string{}, interactionProducts...),
		"collaboration tool", "video conferencing system", "learning management system", "design software")

	reviewContexts = []string{
		"personal", "professional", "technical", "non-technical", "enterprise", "small business",
		"power user", "casual user", "beginner", "expert", "frequent", "occasional", "returning",
		"international", "academic", "creative", "administrative", "management", "remote", "on-site",
	}

	ticketScenarios = []string{
		"after the recent update", "during peak usage", "when integrating with third-party services",
		"while onboarding new users", "when scaling our operations", "during data migration",
		"in our production environment", "with large datasets", "on mobile devices", "with certain browsers",
		"under high loads", "during the checkout process", "with international customers",
		"with custom configurations", "when using advanced features", "during real-time operations",
	}

	ticketContexts = []string{
		"enterprise", "small business", "non-profit", "educational", "technical", "non-technical",
		"international", "remote", "startup", "healthcare", "financial", "government", "retail",
		"manufacturing", "IT", "marketing", "sales", "developer", "designer", "executive",
	}
)
