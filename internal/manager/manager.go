package manager

import (
	"sync"
	"time"
)

// Manager owns the model handle's lifecycle state machine
// (unloaded → loading → ready / failed) and guarantees at most one
// concurrent load. It is the only mutable shared state in the core;
// everything it hands out is read-only.
type Manager struct {
	mu      sync.RWMutex
	state   State
	handle  Handle
	loadErr error  // recorded outcome of the last attempt, nil when ready
	errMsg  string // human-readable detail for status/health

	// loadDone is closed when the in-flight attempt resolves; waiters
	// block on it instead of duplicating the load.
	loadDone chan struct{}

	loader      Loader
	model       string
	threshold   float64
	loadTimeout time.Duration

	loadsTotal uint64
	startTime  time.Time
}

// New constructs a Manager with defaults for unspecified tunables.
func New(loader Loader, model string) *Manager {
	return NewWithConfig(ManagerConfig{Loader: loader, Model: model})
}

// Ready reports whether a handle is loaded. Never triggers a load.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady && m.handle != nil
}

// DefaultThreshold returns the threshold applied when a request omits one.
func (m *Manager) DefaultThreshold() float64 {
	return m.threshold
}

// Close releases the loaded handle, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	h := m.handle
	m.handle = nil
	m.state = StateUnloaded
	m.mu.Unlock()
	if h != nil {
		return h.Close()
	}
	return nil
}
