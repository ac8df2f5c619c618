// internal/population/builder_test.go
package population

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

func newTestBuilder(t *testing.T, seed int64) *Builder {
	return NewBuilder(rand.New(rand.NewSource(seed)), logger.NewTestLogger(t))
}

func TestBuilder_Build_CountAndFields(t *testing.T) {
	builder := newTestBuilder(t, 42)

	customers := builder.Build(25)

	assert.Len(t, customers, 25)

	validPersonas := make(map[dataset.Persona]bool)
	for _, p := range dataset.Personas() {
		validPersonas[p] = true
	}

	now := time.Now()
	for i, c := range customers {
		assert.Equal(t, fmt.Sprintf("CUST-%03d", i+1), c.CustomerID)
		assert.True(t, validPersonas[c.Persona], "unexpected persona %q", c.Persona)
		assert.GreaterOrEqual(t, c.ProductsOwned, 1)
		assert.LessOrEqual(t, c.ProductsOwned, 5)
		assert.GreaterOrEqual(t, c.LifetimeValue, 100)
		assert.LessOrEqual(t, c.LifetimeValue, 10000)

		signUp, err := time.Parse(dataset.DateLayout, c.SignUpDate)
		assert.NoError(t, err)
		age := now.Sub(signUp)
		assert.GreaterOrEqual(t, age, 29*24*time.Hour, "sign-up date too recent: %s", c.SignUpDate)
		assert.LessOrEqual(t, age, 1096*24*time.Hour, "sign-up date too old: %s", c.SignUpDate)
	}
}

func TestBuilder_Build_EmptyPopulation(t *testing.T) {
	builder := newTestBuilder(t, 1)

	customers := builder.Build(0)

	assert.NotNil(t, customers)
	assert.Len(t, customers, 0)
}

func TestBuilder_Build_DeterministicUnderFixedSeed(t *testing.T) {
	first := newTestBuilder(t, 7).Build(50)
	second := newTestBuilder(t, 7).Build(50)

	assert.Equal(t, first, second)

	different := newTestBuilder(t, 8).Build(50)
	assert.NotEqual(t, first, different)
}

func TestBuilder_Build_PersonaSpread(t *testing.T) {
	builder := newTestBuilder(t, 99)

	customers := builder.Build(500)

	seen := make(map[dataset.Persona]int)
	for _, c := range customers {
		seen[c.Persona]++
	}
	for _, p := range dataset.Personas() {
		assert.Greater(t, seen[p], 0, "persona %q never assigned in 500 draws", p)
	}
}
