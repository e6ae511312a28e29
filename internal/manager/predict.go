package manager

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"emotiond/pkg/types"
)

// Predict validates the request, ensures the model is loaded, and runs the
// inference pipeline. Validation happens before EnsureReady so a bad request
// never triggers an expensive load.
func (m *Manager) Predict(ctx context.Context, text string, threshold float64) (types.Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return types.Prediction{}, ErrInvalidInput("text must not be empty")
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return types.Prediction{}, ErrInvalidInput("threshold must be in [0,1]")
	}

	h, err := m.EnsureReady(ctx)
	if err != nil {
		return types.Prediction{}, err
	}

	start := time.Now()
	pred, err := h.Predict(text, threshold)
	dur := time.Since(start)
	if err != nil {
		// Input text is deliberately kept out of non-debug logs.
		log.Error().Dur("dur", dur).Int("text_len", len(text)).Err(err).Msg("prediction failed")
		log.Debug().Str("text", text).Msg("failing input")
		observePrediction("failure", dur)
		return types.Prediction{}, ErrInference(err.Error())
	}
	observePrediction("success", dur)
	return pred, nil
}
