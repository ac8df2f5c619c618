// internal/genai/mock.go
package genai

import (
	"context"
	"sync"
)

// MockGenerator is a configurable TextGenerator for tests. Set GenerateFunc
// to control behavior; call counting is safe under concurrent use so the
// parallel coordinator can be exercised against it.
type MockGenerator struct {
	// GenerateFunc is called when Generate is invoked. If nil, a fixed
	// sentence long enough to pass the minimum-length check is returned.
	GenerateFunc func(ctx context.Context, prompt string, params SampleParams) (string, error)

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	mu            sync.Mutex
	generateCalls int
}

// NewMockGenerator creates a mock with sensible defaults.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{ModelName: "mock-model"}
}

// Generate implements TextGenerator.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, params SampleParams) (string, error) {
	m.mu.Lock()
	m.generateCalls++
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, params)
	}
	return "The team resolved the request quickly and followed up with clear next steps.", nil
}

// Model implements TextGenerator.
func (m *MockGenerator) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

// GenerateCalls returns how many times Generate has been invoked.
func (m *MockGenerator) GenerateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generateCalls
}
