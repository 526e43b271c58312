package mocks

import "github.com/vovakirdan/tui-tetris/internal/tetris"

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int
	// Calls records the n argument of every Intn call
	Calls []int
}

// Ensure MockRandom implements Random
var _ tetris.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with the given queued results
func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	r.Calls = append(r.Calls, n)
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueuePieces queues the Intn results that make a uniform factory produce
// the given piece types in order
func (r *MockRandom) QueuePieces(types ...tetris.PieceType) {
	for _, t := range types {
		r.IntnResults = append(r.IntnResults, int(t)-1)
	}
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.Calls = nil
}
