// internal/pipeline/sequencer.go
package pipeline

import (
	"fmt"
	"sort"
)

// Sequenced is any stream record the sequencer can order and label: a
// chronological sort key plus a copy-with-id constructor.
type Sequenced[T any] interface {
	SortKey() string
	WithID(id string) T
}

// Sequence stable-sorts records chronologically and assigns dense 1-based
// ids of the form PREFIX-001. The input slice is left untouched; ordering
// relies on SortKey strings comparing in time order.
func Sequence[T Sequenced[T]](records []T, prefix string) []T {
	out := make([]T, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortKey() < out[j].SortKey()
	})
	for i := range out {
		out[i] = out[i].WithID(fmt.Sprintf("%s-%03d", prefix, i+1))
	}
	return out
}
