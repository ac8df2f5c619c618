// internal/sink/file.go
package sink

import (
	"context"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"synthgen/internal/common/config"
	apperrors "synthgen/internal/common/errors"
	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileSink writes the four dataset files as two-space-indented JSON arrays.
// Every run fully overwrites the previous output; downstream demo loaders
// read whole files, so there is no append mode.
type FileSink struct {
	cfg    config.OutputConfig
	logger logger.Logger
}

// NewFileSink creates the mandatory file sink for the configured output dir.
func NewFileSink(cfg config.OutputConfig, log logger.Logger) *FileSink {
	return &FileSink{
		cfg: cfg,
		logger: log.With(map[string]interface{}{
			"sink": "file",
		}),
	}
}

// Name implements Sink.
func (s *FileSink) Name() string { return "file" }

// Write implements Sink.
func (s *FileSink) Write(ctx context.Context, bundle *dataset.Bundle) error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return apperrors.NewSinkWriteFailedError(s.cfg.Dir, err)
	}

	files := []struct {
		name string
		data interface{}
	}{
		{s.cfg.CustomersFile, bundle.Customers},
		{s.cfg.InteractionsFile, bundle.Interactions},
		{s.cfg.ReviewsFile, bundle.Reviews},
		{s.cfg.TicketsFile, bundle.Tickets},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.writeFile(f.name, f.data); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileSink) writeFile(name string, data interface{}) error {
	path := filepath.Join(s.cfg.Dir, name)

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return apperrors.NewSinkWriteFailedError(path, err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return apperrors.NewSinkWriteFailedError(path, err)
	}

	s.logger.Debug("dataset file written", map[string]interface{}{
		"path":  path,
		"bytes": len(encoded),
	})
	return nil
}
