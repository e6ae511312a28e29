package classifier

import (
	"context"
	"fmt"

	"emotiond/internal/hub"
)

// Artifact names fetched for every model repository.
const (
	artifactModel  = "model.onnx"
	artifactVocab  = "vocab.txt"
	artifactConfig = "config.json"
)

// LoaderConfig holds everything needed to materialize a model handle.
type LoaderConfig struct {
	// Model is the hub repository identifier, e.g. "org/model".
	Model string
	// Cache resolves and stores the model artifacts.
	Cache *hub.Cache
	// MaxSeqLen bounds tokenized input length, including [CLS]/[SEP].
	MaxSeqLen int
	// ORTLibrary optionally points at the onnxruntime shared library.
	ORTLibrary string
}

// Loader acquires tokenizer and classification weights and builds an
// inference-ready Model. It performs no caching of its own: lifecycle
// ownership belongs to the manager.
type Loader struct {
	cfg LoaderConfig
}

// NewLoader creates a Loader for the configured model repository.
func NewLoader(cfg LoaderConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load fetches artifacts through the cache, constructs the tokenizer and
// ONNX session, and validates that the label vocabulary matches the
// classification head. Either a fully valid Model is returned or an error;
// no partial handle is ever exposed.
func (l *Loader) Load(ctx context.Context) (*Model, error) {
	paths, err := l.cfg.Cache.Ensure(ctx, l.cfg.Model,
		artifactModel, artifactVocab, artifactConfig)
	if err != nil {
		return nil, err
	}

	tok, err := newTokenizer(paths[artifactVocab], l.cfg.MaxSeqLen)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	labels, err := loadLabels(paths[artifactConfig])
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	sess, err := newONNXSession(paths[artifactModel], l.cfg.ORTLibrary)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	if int64(len(labels)) != sess.numLabels {
		sess.close()
		return nil, fmt.Errorf("classifier: label vocabulary size %d != classification head size %d",
			len(labels), sess.numLabels)
	}

	return &Model{session: sess, tok: tok, labels: labels}, nil
}
