package bm11

import "sync"

// Model caches the output for its current input. The output is recomputed
// on the first Output call after SetInput and shared until the next change.
// Readers get either the previous or the new *Output, never a mix.
//
// The HTTP server holds one Model with fixed default input and never calls
// SetInput on it; SetInput is for embedders that keep a long-lived model
// whose parameters change.
type Model struct {
	mu     sync.RWMutex
	input  Input
	output *Output
	err    error
	dirty  bool
}

func NewModel() *Model {
	return &Model{input: DefaultInput(), dirty: true}
}

func (m *Model) Input() Input {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.input
}

func (m *Model) SetInput(in Input) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = in
	m.dirty = true
}

// Output returns the cached result. Callers must treat it as read-only.
func (m *Model) Output() (*Output, error) {
	m.mu.RLock()
	if !m.dirty {
		out, err := m.output, m.err
		m.mu.RUnlock()
		return out, err
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dirty {
		m.output, m.err = Evaluate(m.input)
		m.dirty = false
	}
	return m.output, m.err
}
