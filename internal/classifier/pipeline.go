package classifier

import (
	"fmt"
	"math"
	"sort"

	"emotiond/pkg/types"
)

// Model is an inference-ready handle: ONNX session, tokenizer, and the
// ordered label vocabulary captured at load time. It is immutable after
// construction and safe for concurrent Predict calls.
type Model struct {
	session *onnxSession
	tok     *tokenizer
	labels  []string
}

// Labels returns the fixed label vocabulary in model output order.
func (m *Model) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Predict scores text against every label independently and returns the
// labels whose activated probability clears the threshold, sorted descending
// by score. The original untruncated text is echoed back in the result.
func (m *Model) Predict(text string, threshold float64) (types.Prediction, error) {
	enc := m.tok.encode(text)

	logits, err := m.session.logits(enc)
	if err != nil {
		return types.Prediction{}, err
	}
	if len(logits) != len(m.labels) {
		return types.Prediction{}, fmt.Errorf("classifier: got %d logits for %d labels",
			len(logits), len(m.labels))
	}

	probs, err := activate(logits)
	if err != nil {
		return types.Prediction{}, err
	}

	return types.Prediction{
		Emotions:     rank(m.labels, probs, threshold),
		TextAnalyzed: text,
	}, nil
}

// Close releases the underlying ONNX session.
func (m *Model) Close() error {
	if m.session != nil {
		return m.session.close()
	}
	return nil
}

// activate applies an independent sigmoid to each logit. Each label's
// probability is computed on its own, which is what makes the classification
// multi-label rather than a softmax distribution. Non-finite logits are
// reported as an error rather than propagated into scores.
func activate(logits []float32) ([]float64, error) {
	probs := make([]float64, len(logits))
	for i, l := range logits {
		x := float64(l)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("classifier: non-finite logit at index %d", i)
		}
		probs[i] = 1.0 / (1.0 + math.Exp(-x))
	}
	return probs, nil
}

// rank filters labels by threshold and sorts descending by score. Ties are
// broken by label position in the vocabulary, so results are deterministic.
func rank(labels []string, probs []float64, threshold float64) []types.EmotionScore {
	emotions := make([]types.EmotionScore, 0, len(labels))
	for i, p := range probs {
		if p >= threshold {
			emotions = append(emotions, types.EmotionScore{Label: labels[i], Score: p})
		}
	}
	// Stable sort over vocabulary order yields the index tiebreak.
	sort.SliceStable(emotions, func(a, b int) bool {
		return emotions[a].Score > emotions[b].Score
	})
	return emotions
}
