// cmd/tools/dataset-lint/main.go

// dataset-lint validates previously generated dataset files against the
// canonical record schemas. Exit code 0 means every record passed, 1 means
// at least one violation or a missing/unreadable file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"synthgen/internal/sink"
)

func main() {
	dir := flag.String("dir", "./data", "directory holding the generated dataset files")
	maxErrors := flag.Int("max-errors", 10, "stop reporting after this many violations per file")
	flag.Parse()

	validator, err := sink.NewValidator()
	if err != nil {
		fmt.Printf("Error compiling schemas: %v\n", err)
		os.Exit(1)
	}

	files := []struct {
		name   string
		stream string
	}{
		{"customers.json", sink.StreamCustomers},
		{"customer_interactions.json", sink.StreamInteractions},
		{"product_reviews.json", sink.StreamReviews},
		{"support_tickets.json", sink.StreamTickets},
	}

	failed := false
	for _, f := range files {
		path := filepath.Join(*dir, f.name)
		violations, records, err := lintFile(validator, f.stream, path, *maxErrors)
		if err != nil {
			fmt.Printf("%s: ERROR %v\n", f.name, err)
			failed = true
			continue
		}
		if len(violations) == 0 {
			fmt.Printf("%s: OK (%d records)\n", f.name, records)
			continue
		}
		failed = true
		fmt.Printf("%s: %d records, %d+ violations\n", f.name, records, len(violations))
		for _, v := range violations {
			fmt.Printf("  %s\n", v)
		}
	}

	if failed {
		os.Exit(1)
	}
}

// lintFile validates every record of one stream file, returning up to
// maxErrors violation messages.
func lintFile(v *sink.Validator, stream, path string, maxErrors int) ([]string, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, 0, fmt.Errorf("not a JSON array: %w", err)
	}

	var violations []string
	for i, record := range records {
		if err := v.ValidateRaw(stream, record); err != nil {
			violations = append(violations, fmt.Sprintf("record %d: %v", i, err))
			if len(violations) >= maxErrors {
				break
			}
		}
	}
	return violations, len(records), nil
}
