package classifier

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect. libPath may be empty, in which
// case the runtime's default library resolution applies.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxSession wraps a DynamicAdvancedSession for a BERT-style sequence
// classification model with a [batch, numLabels] output head.
type onnxSession struct {
	session    *ort.DynamicAdvancedSession
	inputNames []string
	outputName string
	numLabels  int64

	// Run is serialized; the session itself is not guaranteed re-entrant.
	mu sync.Mutex
}

// newONNXSession loads the ONNX model and creates an inference session.
// It validates the model's input tensors and the classification head shape.
func newONNXSession(modelPath, libPath string) (*onnxSession, error) {
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	// Inspect model to discover tensor names and shapes.
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	inputNames, err := validateInputs(inputs)
	if err != nil {
		return nil, err
	}

	// Validate output — expect a single tensor with shape [batch, numLabels].
	if len(outputs) == 0 {
		return nil, fmt.Errorf("onnx: model has no outputs")
	}
	outputName := outputs[0].Name
	dims := outputs[0].Dimensions
	if len(dims) != 2 {
		return nil, fmt.Errorf("onnx: expected 2D logits tensor, got %v", dims)
	}
	numLabels := dims[1]
	if numLabels <= 0 {
		return nil, fmt.Errorf("onnx: classification head has no labels: %v", dims)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		inputNames,
		[]string{outputName},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxSession{
		session:    session,
		inputNames: inputNames,
		outputName: outputName,
		numLabels:  numLabels,
	}, nil
}

// validateInputs checks the model's BERT-style inputs. token_type_ids is
// optional because some classification exports drop it.
func validateInputs(inputs []ort.InputOutputInfo) ([]string, error) {
	nameSet := make(map[string]bool, len(inputs))
	for _, inp := range inputs {
		nameSet[inp.Name] = true
	}
	for _, name := range []string{"input_ids", "attention_mask"} {
		if !nameSet[name] {
			return nil, fmt.Errorf("onnx: model missing required input %q", name)
		}
	}
	names := []string{"input_ids", "attention_mask"}
	if nameSet["token_type_ids"] {
		names = append(names, "token_type_ids")
	}
	return names, nil
}

// logits runs the forward pass for one encoded text and returns the raw
// classification scores, one per label.
func (s *onnxSession) logits(enc encoded) ([]float32, error) {
	shape := ort.NewShape(1, enc.seqLen)

	tIDs, err := ort.NewTensor(shape, enc.inputIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input_ids tensor: %w", err)
	}
	defer tIDs.Destroy()

	tMask, err := ort.NewTensor(shape, enc.attentionMask)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create attention_mask tensor: %w", err)
	}
	defer tMask.Destroy()

	in := []ort.Value{tIDs, tMask}
	if len(s.inputNames) == 3 {
		tTypes, err := ort.NewTensor(shape, enc.tokenTypeIDs)
		if err != nil {
			return nil, fmt.Errorf("onnx: failed to create token_type_ids tensor: %w", err)
		}
		defer tTypes.Destroy()
		in = append(in, tTypes)
	}

	outShape := ort.NewShape(1, s.numLabels)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	s.mu.Lock()
	err = s.session.Run(in, []ort.Value{tOut})
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	// Copy data out before the tensor is destroyed.
	src := tOut.GetData()
	result := make([]float32, len(src))
	copy(result, src)
	return result, nil
}

// close releases the ONNX session resources.
func (s *onnxSession) close() error {
	return s.session.Destroy()
}
