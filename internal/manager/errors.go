package manager

// invalidInputError signals a bad request value for 400 mapping. Never
// retried: the same input will fail the same way.
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

// ErrInvalidInput constructs an invalidInputError.
func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err indicates a rejected request value.
func IsInvalidInput(err error) bool {
	_, ok := err.(invalidInputError)
	return ok
}

// loadError signals artifact acquisition or validation failure so the HTTP
// layer can return 503 Service Unavailable. A later ensure re-attempts.
type loadError struct{ msg string }

func (e loadError) Error() string { return "model load failed: " + e.msg }

// ErrLoad constructs a loadError.
func ErrLoad(msg string) error { return loadError{msg: msg} }

// IsLoad reports whether err indicates a failed model load.
func IsLoad(err error) bool {
	_, ok := err.(loadError)
	return ok
}

// inferenceError signals an unexpected tokenization/forward-pass failure for
// 500 mapping. The pipeline never guesses a default prediction.
type inferenceError struct{ msg string }

func (e inferenceError) Error() string { return "prediction failed: " + e.msg }

// ErrInference constructs an inferenceError.
func ErrInference(msg string) error { return inferenceError{msg: msg} }

// IsInference reports whether err indicates a failed forward pass.
func IsInference(err error) bool {
	_, ok := err.(inferenceError)
	return ok
}
