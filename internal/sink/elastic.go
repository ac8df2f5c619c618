// internal/sink/elastic.go
package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"synthgen/internal/common/database"
	apperrors "synthgen/internal/common/errors"
	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

// ElasticSink bulk-indexes every stream into its own index
// (<prefix>-customers, <prefix>-interactions, ...), with record ids as
// document ids so re-runs upsert instead of duplicating.
type ElasticSink struct {
	client      *database.ElasticsearchClient
	indexPrefix string
	logger      logger.Logger
}

// NewElasticSink creates an indexer on an open client.
func NewElasticSink(client *database.ElasticsearchClient, indexPrefix string, log logger.Logger) *ElasticSink {
	return &ElasticSink{
		client:      client,
		indexPrefix: indexPrefix,
		logger: log.With(map[string]interface{}{
			"sink": "search",
		}),
	}
}

// Name implements Sink.
func (s *ElasticSink) Name() string { return "search" }

// Write implements Sink.
func (s *ElasticSink) Write(ctx context.Context, bundle *dataset.Bundle) error {
	if err := indexStream(ctx, s, StreamCustomers, bundle.Customers,
		func(c dataset.Customer) string { return c.CustomerID }); err != nil {
		return err
	}
	if err := indexStream(ctx, s, StreamInteractions, bundle.Interactions,
		func(i dataset.Interaction) string { return i.InteractionID }); err != nil {
		return err
	}
	if err := indexStream(ctx, s, StreamReviews, bundle.Reviews,
		func(r dataset.Review) string { return r.ReviewID }); err != nil {
		return err
	}
	return indexStream(ctx, s, StreamTickets, bundle.Tickets,
		func(t dataset.Ticket) string { return t.TicketID })
}

// indexStream bulk-indexes one stream's records.
func indexStream[T any](ctx context.Context, s *ElasticSink, stream string, records []T, id func(T) string) error {
	if len(records) == 0 {
		return nil
	}

	index := s.index(stream)
	body, err := bulkBody(index, records, id)
	if err != nil {
		return apperrors.NewIndexLoadFailedError(index, err)
	}
	if err := s.bulk(ctx, index, body); err != nil {
		return err
	}

	s.logger.Debug("stream indexed", map[string]interface{}{
		"index":     index,
		"documents": len(records),
	})
	return nil
}

func (s *ElasticSink) bulk(ctx context.Context, index string, body []byte) error {
	es := s.client.Client
	res, err := es.Bulk(bytes.NewReader(body), es.Bulk.WithContext(ctx))
	if err != nil {
		return apperrors.NewIndexLoadFailedError(index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return apperrors.NewIndexLoadFailedError(index, fmt.Errorf("bulk request: %s", res.Status()))
	}

	// The bulk endpoint reports per-document failures inside a 200 response.
	var reply struct {
		Errors bool `json:"errors"`
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return apperrors.NewIndexLoadFailedError(index, err)
	}
	if err := json.Unmarshal(raw, &reply); err != nil {
		return apperrors.NewIndexLoadFailedError(index, err)
	}
	if reply.Errors {
		return apperrors.NewIndexLoadFailedError(index, fmt.Errorf("bulk response contains item errors"))
	}
	return nil
}

func (s *ElasticSink) index(stream string) string {
	return fmt.Sprintf("%s-%s", s.indexPrefix, stream)
}

// bulkBody renders one stream as NDJSON index actions.
func bulkBody[T any](index string, records []T, id func(T) string) ([]byte, error) {
	var buf bytes.Buffer
	for _, record := range records {
		doc, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `{"index":{"_index":%q,"_id":%q}}`+"\n", index, id(record))
		buf.Write(doc)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
