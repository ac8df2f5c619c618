// internal/population/builder.go
package population

import (
	"fmt"
	"math/rand"
	"time"

	"synthgen/internal/common/logger"
	"synthgen/internal/dataset"
)

// Builder creates the customer base every downstream stream draws from.
// All randomness comes from the injected generator so a fixed seed
// reproduces the same population.
type Builder struct {
	rng    *rand.Rand
	logger logger.Logger
}

// NewBuilder creates a population builder.
func NewBuilder(rng *rand.Rand, log logger.Logger) *Builder {
	return &Builder{
		rng: rng,
		logger: log.With(map[string]interface{}{
			"component": "population",
		}),
	}
}

// Build produces n customers with dense CUST-001… identifiers, a uniformly
// chosen persona, a sign-up date 30–1095 days back, 1–5 owned products and a
// lifetime value of 100–10000. n == 0 yields an empty population, which in
// turn yields empty downstream streams.
func (b *Builder) Build(n int) []dataset.Customer {
	personas := dataset.Personas()
	now := time.Now()

	customers := make([]dataset.Customer, 0, n)
	for i := 0; i < n; i++ {
		signUp := now.AddDate(0, 0, -(30 + b.rng.Intn(1066)))
		customers = append(customers, dataset.Customer{
			CustomerID:    fmt.Sprintf("CUST-%03d", i+1),
			Persona:       personas[b.rng.Intn(len(personas))],
			SignUpDate:    signUp.Format(dataset.DateLayout),
			ProductsOwned: 1 + b.rng.Intn(5),
			LifetimeValue: 100 + b.rng.Intn(9901),
		})
	}

	b.logger.Debug("customer base generated", map[string]interface{}{
		"count": len(customers),
	})
	return customers
}
