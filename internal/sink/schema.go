// internal/sink/schema.go
package sink

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "synthgen/internal/common/errors"
	"synthgen/internal/dataset"
)

// Stream names accepted by the Validator. Customers are not a planned
// stream but their records are validated like one.
const (
	StreamCustomers    = "customers"
	StreamInteractions = "interactions"
	StreamReviews      = "reviews"
	StreamTickets      = "tickets"
)

// Validator checks outgoing records against the canonical per-stream JSON
// schemas. The schemas encode the downstream consumer contract: id formats,
// rating bounds, enum vocabularies and timestamp layouts.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the four stream schemas.
func NewValidator() (*Validator, error) {
	sources := map[string]string{
		StreamCustomers:    customerSchema,
		StreamInteractions: interactionSchema,
		StreamReviews:      reviewSchema,
		StreamTickets:      ticketSchema,
	}

	schemas := make(map[string]*gojsonschema.Schema, len(sources))
	for stream, src := range sources {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			return nil, fmt.Errorf("compiling %s schema: %w", stream, err)
		}
		schemas[stream] = schema
	}
	return &Validator{schemas: schemas}, nil
}

// ValidateRaw validates one already-encoded record against a stream schema.
func (v *Validator) ValidateRaw(stream string, doc []byte) error {
	schema, ok := v.schemas[stream]
	if !ok {
		return fmt.Errorf("unknown stream %q", stream)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return apperrors.NewSchemaValidationFailedError(stream, err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		details = append(details, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}
	return apperrors.NewSchemaValidationFailedError(stream, strings.Join(details, "; "))
}

// ValidateBundle validates every record of the bundle, stopping at the
// first invalid one.
func (v *Validator) ValidateBundle(bundle *dataset.Bundle) error {
	if err := validateRecords(v, StreamCustomers, bundle.Customers); err != nil {
		return err
	}
	if err := validateRecords(v, StreamInteractions, bundle.Interactions); err != nil {
		return err
	}
	if err := validateRecords(v, StreamReviews, bundle.Reviews); err != nil {
		return err
	}
	return validateRecords(v, StreamTickets, bundle.Tickets)
}

func validateRecords[T any](v *Validator, stream string, records []T) error {
	for i, record := range records {
		doc, err := json.Marshal(record)
		if err != nil {
			return apperrors.NewSchemaValidationFailedError(stream, fmt.Sprintf("record %d: %v", i, err))
		}
		if err := v.ValidateRaw(stream, doc); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

const customerSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["customer_id", "persona", "sign_up_date", "products_owned", "lifetime_value"],
	"additionalProperties": false,
	"properties": {
		"customer_id": {"type": "string", "pattern": "^CUST-\\d{3,}$"},
		"persona": {"enum": ["satisfied", "frustrated", "neutral", "mixed", "new"]},
		"sign_up_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"products_owned": {"type": "integer", "minimum": 1, "maximum": 5},
		"lifetime_value": {"type": "integer", "minimum": 100, "maximum": 10000}
	}
}`

const interactionSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["interaction_id", "customer_id", "interaction_date", "interaction_notes",
		"agent_id", "interaction_type", "specific_tone", "context", "scenario", "product"],
	"additionalProperties": false,
	"properties": {
		"interaction_id": {"type": "string", "pattern": "^INT-\\d{3,}$"},
		"customer_id": {"type": "string", "pattern": "^CUST-\\d{3,}$"},
		"interaction_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}$"},
		"interaction_notes": {"type": "string", "minLength": 1},
		"agent_id": {"type": "string", "pattern": "^AG-\\d{3}$"},
		"interaction_type": {"enum": ["call", "email", "chat", "in-person", "social-media",
			"video-call", "support-portal", "SMS", "mobile-app", "feedback-form",
			"support-chat", "knowledge-base", "community-forum",
			"scheduled-call", "web-demo", "consultation"]},
		"specific_tone": {"type": "string", "minLength": 1},
		"context": {"type": "string"},
		"scenario": {"type": "string"},
		"product": {"type": "string"}
	}
}`

const reviewSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["review_id", "customer_id", "product_id", "review_date", "review_rating",
		"review_text", "review_language", "specific_tone", "context", "product"],
	"additionalProperties": false,
	"properties": {
		"review_id": {"type": "string", "pattern": "^REV-\\d{3,}$"},
		"customer_id": {"type": "string", "pattern": "^CUST-\\d{3,}$"},
		"product_id": {"type": "string", "pattern": "^PROD-[A-Z](10|[1-9])$"},
		"review_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}$"},
		"review_rating": {"type": "integer", "minimum": 1, "maximum": 5},
		"review_text": {"type": "string", "minLength": 1},
		"review_language": {"enum": ["english", "spanish", "french", "german", "italian", "portuguese"]},
		"specific_tone": {"type": "string", "minLength": 1},
		"context": {"type": "string"},
		"product": {"type": "string"}
	}
}`

const ticketSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["ticket_id", "customer_id", "ticket_date", "ticket_description",
		"ticket_status", "ticket_category", "ticket_subcategory", "context", "scenario", "product"],
	"additionalProperties": false,
	"properties": {
		"ticket_id": {"type": "string", "pattern": "^TICKET-\\d{3,}$"},
		"customer_id": {"type": "string", "pattern": "^CUST-\\d{3,}$"},
		"ticket_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}$"},
		"ticket_description": {"type": "string", "minLength": 1},
		"ticket_status": {"enum": ["open", "in-progress", "resolved", "closed", "escalated",
			"pending-customer", "awaiting-approval", "on-hold", "reopened",
			"pending-investigation", "in-review", "scheduled", "awaiting-deployment",
			"needs-information", "transferred", "archived", "critical"]},
		"ticket_category": {"enum": ["technical", "billing", "account", "feature-request"]},
		"ticket_subcategory": {"type": "string", "minLength": 1},
		"context": {"type": "string"},
		"scenario": {"type": "string"},
		"product": {"type": "string"}
	}
}`
