package manager

import "time"

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultLoadTimeout      = 5 * time.Minute
	defaultThreshold        = 0.05
	defaultModelDescription = "multi-label emotion classification"
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	// Loader materializes the model handle on demand.
	Loader Loader
	// Model is the configured model identifier, reported by status/health.
	Model string
	// DefaultThreshold applies when a request omits the threshold.
	DefaultThreshold float64
	// LoadTimeout bounds a single load attempt; on expiry the attempt is
	// recorded as failed rather than left loading indefinitely.
	LoadTimeout time.Duration
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		state:     StateUnloaded,
		loader:    cfg.Loader,
		model:     cfg.Model,
		threshold: cfg.DefaultThreshold,
	}
	if cfg.LoadTimeout <= 0 {
		m.loadTimeout = defaultLoadTimeout
	} else {
		m.loadTimeout = cfg.LoadTimeout
	}
	if m.threshold <= 0 {
		m.threshold = defaultThreshold
	}
	m.startTime = time.Now()
	return m
}
