// internal/dataset/enums.go
package dataset

// StreamKind identifies one of the generated entity streams.
type StreamKind string

const (
	StreamInteractions StreamKind = "interactions"
	StreamReviews      StreamKind = "reviews"
	StreamTickets      StreamKind = "tickets"
)

// IDPrefix returns the identifier prefix assigned after the chronological
// sort (customers are prefixed at build time, not here).
func (k StreamKind) IDPrefix() string {
	switch k {
	case StreamInteractions:
		return "INT"
	case StreamReviews:
		return "REV"
	case StreamTickets:
		return "TICKET"
	}
	return ""
}

// Multiplier is the per-customer item multiplier for the stream. Stream
// sizes are min(customers*Multiplier, MaxStreamItems).
func (k StreamKind) Multiplier() int {
	switch k {
	case StreamInteractions:
		return 3
	case StreamReviews, StreamTickets:
		return 2
	}
	return 0
}

// MaxStreamItems caps every stream regardless of customer count.
const MaxStreamItems = 1000

// Persona is a fixed behavioral archetype assigned to a customer.
type Persona string

const (
	PersonaSatisfied  Persona = "satisfied"
	PersonaFrustrated Persona = "frustrated"
	PersonaNeutral    Persona = "neutral"
	PersonaMixed      Persona = "mixed"
	PersonaNew        Persona = "new"
)

// Personas lists every persona in a stable order.
func Personas() []Persona {
	return []Persona{PersonaSatisfied, PersonaFrustrated, PersonaNeutral, PersonaMixed, PersonaNew}
}

// PersonaProfile captures the behavior pattern associated with a persona.
type PersonaProfile struct {
	RatingMin        int
	RatingMax        int
	InteractionTone  string
	SupportFrequency string
	Loyalty          string
}

// PersonaProfiles maps each persona to its behavior pattern.
var PersonaProfiles = map[Persona]PersonaProfile{
	PersonaSatisfied:  {RatingMin: 4, RatingMax: 5, InteractionTone: "positive", SupportFrequency: "low", Loyalty: "high"},
	PersonaFrustrated: {RatingMin: 1, RatingMax: 2, InteractionTone: "negative", SupportFrequency: "high", Loyalty: "low"},
	PersonaNeutral:    {RatingMin: 3, RatingMax: 4, InteractionTone: "neutral", SupportFrequency: "medium", Loyalty: "medium"},
	PersonaMixed:      {RatingMin: 2, RatingMax: 5, InteractionTone: "mixed", SupportFrequency: "medium", Loyalty: "medium"},
	PersonaNew:        {RatingMin: 3, RatingMax: 5, InteractionTone: "positive", SupportFrequency: "medium", Loyalty: "unknown"},
}

// Tone is the coarse sentiment category driving template and prompt
// selection.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// TicketCategory is the coarse support-ticket classification.
type TicketCategory string

const (
	CategoryTechnical      TicketCategory = "technical"
	CategoryBilling        TicketCategory = "billing"
	CategoryAccount        TicketCategory = "account"
	CategoryFeatureRequest TicketCategory = "feature-request"
)

// TicketCategories lists the planned categories in quota order.
func TicketCategories() []TicketCategory {
	return []TicketCategory{CategoryTechnical, CategoryBilling, CategoryAccount, CategoryFeatureRequest}
}

// Language tags the natural language of synthesized text.
type Language string

const (
	LanguageEnglish    Language = "english"
	LanguageSpanish    Language = "spanish"
	LanguageFrench     Language = "french"
	LanguageGerman     Language = "german"
	LanguageItalian    Language = "italian"
	LanguagePortuguese Language = "portuguese"
)

// AlternateLanguages are the non-English languages sampled for the ~20%
// non-English share of reviews and tickets.
func AlternateLanguages() []Language {
	return []Language{LanguageSpanish, LanguageFrench, LanguageGerman, LanguageItalian, LanguagePortuguese}
}

// InteractionChannels is the extended contact-channel vocabulary.
var InteractionChannels = []string{
	"call", "email", "chat", "in-person", "social-media",
	"video-call", "support-portal", "SMS", "mobile-app", "feedback-form",
	"support-chat", "knowledge-base", "community-forum",
	"scheduled-call", "web-demo", "consultation",
}

// TicketStatuses is the ordered status vocabulary; the head of the list
// skews toward open-like states and the tail toward terminal ones, which
// the age-weighted status sampling relies on.
var TicketStatuses = []string{
	"open", "in-progress", "resolved", "closed", "escalated",
	"pending-customer", "awaiting-approval", "on-hold", "reopened",
	"pending-investigation", "in-review", "scheduled", "awaiting-deployment",
	"needs-information", "transferred", "archived", "critical",
}
