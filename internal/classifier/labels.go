package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// goEmotionsLabels is the fixed GoEmotions taxonomy (27 emotions + neutral),
// used when the model config carries no usable id2label mapping.
var goEmotionsLabels = []string{
	"admiration", "amusement", "anger", "annoyance", "approval", "caring",
	"confusion", "curiosity", "desire", "disappointment", "disapproval", "disgust",
	"embarrassment", "excitement", "fear", "gratitude", "grief", "joy",
	"love", "nervousness", "optimism", "pride", "realization", "relief",
	"remorse", "sadness", "surprise", "neutral",
}

// modelConfig is the subset of a transformers config.json we care about.
type modelConfig struct {
	ID2Label map[string]string `json:"id2label"`
}

// loadLabels reads the label vocabulary from config.json. The mapping keys
// are label indices as strings; the result is ordered by index. Placeholder
// names ("LABEL_0", ...) or a missing mapping fall back to the GoEmotions
// taxonomy.
func loadLabels(configPath string) ([]string, error) {
	b, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	var cfg modelConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("labels: parse config.json: %w", err)
	}
	labels, err := orderedLabels(cfg.ID2Label)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		return append([]string(nil), goEmotionsLabels...), nil
	}
	return labels, nil
}

// orderedLabels converts an id2label mapping into an index-ordered slice.
// Returns nil (no error) when the mapping is absent or carries only
// placeholder names.
func orderedLabels(id2label map[string]string) ([]string, error) {
	if len(id2label) == 0 {
		return nil, nil
	}
	labels := make([]string, len(id2label))
	placeholders := 0
	for k, v := range id2label {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(labels) {
			return nil, fmt.Errorf("labels: bad id2label index %q", k)
		}
		if labels[i] != "" {
			return nil, fmt.Errorf("labels: duplicate id2label index %q", k)
		}
		if v == "" {
			return nil, fmt.Errorf("labels: empty label at index %q", k)
		}
		labels[i] = v
		if strings.HasPrefix(v, "LABEL_") {
			placeholders++
		}
	}
	if placeholders > 0 {
		return nil, nil
	}
	return labels, nil
}
