// internal/sink/postgres.go
package sink

import (
	"context"
	"database/sql"

	"synthgen/internal/common/database"
	apperrors "synthgen/internal/common/errors"
	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

// PostgresSink loads the bundle into warehouse tables. Tables are created
// when absent and fully refreshed on every run, mirroring the file sink's
// overwrite semantics.
type PostgresSink struct {
	client *database.PostgresClient
	logger logger.Logger
}

// NewPostgresSink creates a warehouse loader on an open client.
func NewPostgresSink(client *database.PostgresClient, log logger.Logger) *PostgresSink {
	return &PostgresSink{
		client: client,
		logger: log.With(map[string]interface{}{
			"sink": "warehouse",
		}),
	}
}

// Name implements Sink.
func (s *PostgresSink) Name() string { return "warehouse" }

// Write implements Sink.
func (s *PostgresSink) Write(ctx context.Context, bundle *dataset.Bundle) error {
	for _, ddl := range warehouseDDL {
		if _, err := s.client.Exec(ctx, ddl); err != nil {
			return apperrors.NewWarehouseLoadFailedError(err)
		}
	}

	tx, err := s.client.Begin(ctx)
	if err != nil {
		return apperrors.NewWarehouseLoadFailedError(err)
	}
	// Rollback is a no-op once the transaction is committed.
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"TRUNCATE synthgen_customers, synthgen_interactions, synthgen_reviews, synthgen_tickets"); err != nil {
		return apperrors.NewWarehouseLoadFailedError(err)
	}

	if err := s.insertCustomers(ctx, tx, bundle.Customers); err != nil {
		return err
	}
	if err := s.insertInteractions(ctx, tx, bundle.Interactions); err != nil {
		return err
	}
	if err := s.insertReviews(ctx, tx, bundle.Reviews); err != nil {
		return err
	}
	if err := s.insertTickets(ctx, tx, bundle.Tickets); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewWarehouseLoadFailedError(err)
	}

	s.logger.Debug("warehouse load complete", map[string]interface{}{
		"customers":    len(bundle.Customers),
		"interactions": len(bundle.Interactions),
		"reviews":      len(bundle.Reviews),
		"tickets":      len(bundle.Tickets),
	})
	return nil
}

func (s *PostgresSink) insertCustomers(ctx context.Context, tx *sql.Tx, customers []dataset.Customer) error {
	const stmt = `INSERT INTO synthgen_customers
		(customer_id, persona, sign_up_date, products_owned, lifetime_value)
		VALUES ($1, $2, $3, $4, $5)`
	for _, c := range customers {
		if _, err := tx.ExecContext(ctx, stmt,
			c.CustomerID, string(c.Persona), c.SignUpDate, c.ProductsOwned, c.LifetimeValue); err != nil {
			return apperrors.NewWarehouseLoadFailedError(err)
		}
	}
	return nil
}

func (s *PostgresSink) insertInteractions(ctx context.Context, tx *sql.Tx, interactions []dataset.Interaction) error {
	const stmt = `INSERT INTO synthgen_interactions
		(interaction_id, customer_id, interaction_date, interaction_notes,
		 agent_id, interaction_type, specific_tone, context, scenario, product)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, i := range interactions {
		if _, err := tx.ExecContext(ctx, stmt,
			i.InteractionID, i.CustomerID, i.InteractionDate, i.InteractionNotes,
			i.AgentID, i.InteractionType, i.SpecificTone, i.Context, i.Scenario, i.Product); err != nil {
			return apperrors.NewWarehouseLoadFailedError(err)
		}
	}
	return nil
}

func (s *PostgresSink) insertReviews(ctx context.Context, tx *sql.Tx, reviews []dataset.Review) error {
	const stmt = `INSERT INTO synthgen_reviews
		(review_id, customer_id, product_id, review_date, review_rating,
		 review_text, review_language, specific_tone, context, product)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, r := range reviews {
		if _, err := tx.ExecContext(ctx, stmt,
			r.ReviewID, r.CustomerID, r.ProductID, r.ReviewDate, r.ReviewRating,
			r.ReviewText, string(r.ReviewLanguage), r.SpecificTone, r.Context, r.Product); err != nil {
			return apperrors.NewWarehouseLoadFailedError(err)
		}
	}
	return nil
}

func (s *PostgresSink) insertTickets(ctx context.Context, tx *sql.Tx, tickets []dataset.Ticket) error {
	const stmt = `INSERT INTO synthgen_tickets
		(ticket_id, customer_id, ticket_date, ticket_description, ticket_status,
		 ticket_category, ticket_subcategory, context, scenario, product)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, t := range tickets {
		if _, err := tx.ExecContext(ctx, stmt,
			t.TicketID, t.CustomerID, t.TicketDate, t.TicketDescription, t.TicketStatus,
			string(t.TicketCategory), t.TicketSubcategory, t.Context, t.Scenario, t.Product); err != nil {
			return apperrors.NewWarehouseLoadFailedError(err)
		}
	}
	return nil
}

// warehouseDDL creates the four demo tables. Text types keep the schema
// permissive; the JSON schemas are the strict contract.
var warehouseDDL = []string{
	`CREATE TABLE IF NOT EXISTS synthgen_customers (
		customer_id    TEXT PRIMARY KEY,
		persona        TEXT NOT NULL,
		sign_up_date   DATE NOT NULL,
		products_owned INT  NOT NULL,
		lifetime_value INT  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS synthgen_interactions (
		interaction_id    TEXT PRIMARY KEY,
		customer_id       TEXT NOT NULL,
		interaction_date  TIMESTAMP NOT NULL,
		interaction_notes TEXT NOT NULL,
		agent_id          TEXT NOT NULL,
		interaction_type  TEXT NOT NULL,
		specific_tone     TEXT NOT NULL,
		context           TEXT,
		scenario          TEXT,
		product           TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS synthgen_reviews (
		review_id       TEXT PRIMARY KEY,
		customer_id     TEXT NOT NULL,
		product_id      TEXT NOT NULL,
		review_date     TIMESTAMP NOT NULL,
		review_rating   INT  NOT NULL,
		review_text     TEXT NOT NULL,
		review_language TEXT NOT NULL,
		specific_tone   TEXT NOT NULL,
		context         TEXT,
		product         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS synthgen_tickets (
		ticket_id          TEXT PRIMARY KEY,
		customer_id        TEXT NOT NULL,
		ticket_date        TIMESTAMP NOT NULL,
		ticket_description TEXT NOT NULL,
		ticket_status      TEXT NOT NULL,
		ticket_category    TEXT NOT NULL,
		ticket_subcategory TEXT NOT NULL,
		context            TEXT,
		scenario           TEXT,
		product            TEXT
	)`,
}
