package manager

import (
	"context"

	"emotiond/pkg/types"
)

// State represents the lifecycle state of the model handle.
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateFailed   State = "failed"
)

// Handle is an inference-ready model: immutable after load and safe for
// concurrent Predict calls.
type Handle interface {
	// Labels returns the fixed label vocabulary in model output order.
	Labels() []string
	// Predict scores text and returns labels clearing the threshold,
	// sorted descending by score.
	Predict(text string, threshold float64) (types.Prediction, error)
	// Close releases model resources.
	Close() error
}

// Loader acquires tokenizer and weights and materializes a Handle. Either a
// fully valid handle is returned or an error; no partial state.
type Loader interface {
	Load(ctx context.Context) (Handle, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) (Handle, error)

func (f LoaderFunc) Load(ctx context.Context) (Handle, error) { return f(ctx) }

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State State
	Model string
	Err   string
}
