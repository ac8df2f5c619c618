// internal/dataset/types.go
package dataset

// TimeLayout is the timestamp layout used across all generated records.
// It is ISO-8601 without a zone, so lexicographic order equals
// chronological order.
const TimeLayout = "2006-01-02T15:04:05"

// DateLayout is the layout for date-only fields (customer sign-up).
const DateLayout = "2006-01-02"

// Customer is one member of the generated customer base. Customers are
// created once per run and are read-only inputs to every stream.
type Customer struct {
	CustomerID    string  `json:"customer_id"`
	Persona       Persona `json:"persona"`
	SignUpDate    string  `json:"sign_up_date"`
	ProductsOwned int     `json:"products_owned"`
	LifetimeValue int     `json:"lifetime_value"`
}

// Interaction is a single customer-service touchpoint.
type Interaction struct {
	InteractionID    string `json:"interaction_id"`
	CustomerID       string `json:"customer_id"`
	InteractionDate  string `json:"interaction_date"`
	InteractionNotes string `json:"interaction_notes"`
	AgentID          string `json:"agent_id"`
	InteractionType  string `json:"interaction_type"`
	SpecificTone     string `json:"specific_tone"`
	Context          string `json:"context"`
	Scenario         string `json:"scenario"`
	Product          string `json:"product"`
}

// Review is a product review whose rating stays within its tone's band.
type Review struct {
	ReviewID       string   `json:"review_id"`
	CustomerID     string   `json:"customer_id"`
	ProductID      string   `json:"product_id"`
	ReviewDate     string   `json:"review_date"`
	ReviewRating   int      `json:"review_rating"`
	ReviewText     string   `json:"review_text"`
	ReviewLanguage Language `json:"review_language"`
	SpecificTone   string   `json:"specific_tone"`
	Context        string   `json:"context"`
	Product        string   `json:"product"`
}

// Ticket is a support ticket with an age-weighted status.
type Ticket struct {
	TicketID          string         `json:"ticket_id"`
	CustomerID        string         `json:"customer_id"`
	TicketDate        string         `json:"ticket_date"`
	TicketDescription string         `json:"ticket_description"`
	TicketStatus      string         `json:"ticket_status"`
	TicketCategory    TicketCategory `json:"ticket_category"`
	TicketSubcategory string         `json:"ticket_subcategory"`
	Context           string         `json:"context"`
	Scenario          string         `json:"scenario"`
	Product           string         `json:"product"`
}

// Bundle is one run's complete output: the customer base plus the three
// sequenced entity streams.
type Bundle struct {
	Customers    []Customer    `json:"customers"`
	Interactions []Interaction `json:"interactions"`
	Reviews      []Review      `json:"reviews"`
	Tickets      []Ticket      `json:"tickets"`
}

// SortKey and WithID are the sequencing hooks used after generation: records
// are ordered by their TimeLayout timestamp (lexicographic order equals
// chronological order) and then labeled with dense stream-scoped ids.

func (i Interaction) SortKey() string { return i.InteractionDate }

func (i Interaction) WithID(id string) Interaction {
	i.InteractionID = id
	return i
}

func (r Review) SortKey() string { return r.ReviewDate }

func (r Review) WithID(id string) Review {
	r.ReviewID = id
	return r
}

func (t Ticket) SortKey() string { return t.TicketDate }

func (t Ticket) WithID(id string) Ticket {
	t.TicketID = id
	return t
}
