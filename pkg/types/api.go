package types

// PredictRequest is the body of POST /api/predict.
type PredictRequest struct {
	// Required text to analyze.
	// example: I'm feeling really excited about this new project!
	Text string `json:"text" example:"I'm feeling really excited about this new project!"`
}

// PredictResponse wraps a Prediction for the HTTP layer.
type PredictResponse struct {
	// Always true on a successful prediction.
	// example: true
	Success bool `json:"success" example:"true"`
	// Labels that cleared the threshold, highest score first.
	Emotions []EmotionScore `json:"emotions"`
	// The original input text, echoed untruncated.
	TextAnalyzed string `json:"text_analyzed"`
}

// MessageResponse is returned by GET /api and POST /api/warmup.
type MessageResponse struct {
	// Human-readable outcome.
	// example: Model loaded successfully
	Message string `json:"message" example:"Model loaded successfully"`
	// Coarse state: healthy, ready, loading or error.
	// example: ready
	Status string `json:"status" example:"ready"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	// Overall service health: healthy or unhealthy.
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// Model lifecycle detail: not_loaded, loading, loaded, or "error: ...".
	// example: loaded
	ModelStatus string `json:"model_status" example:"loaded"`
	// Identifier of the configured model.
	// example: wncelrcn/mindmap-MiniLM-goemotions-v1
	ModelName string `json:"model_name" example:"wncelrcn/mindmap-MiniLM-goemotions-v1"`
	// Fixed description of the model family.
	// example: multi-label emotion classification
	ModelType string `json:"model_type" example:"multi-label emotion classification"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Lifecycle state: unloaded, loading, ready, failed.
	// example: ready
	State string `json:"state" example:"ready"`
	// Identifier of the configured model.
	// example: wncelrcn/mindmap-MiniLM-goemotions-v1
	Model string `json:"model" example:"wncelrcn/mindmap-MiniLM-goemotions-v1"`
	// Number of labels in the loaded vocabulary (0 until ready).
	// example: 28
	Labels int `json:"labels"`
	// Error detail recorded by the last failed load, if any.
	Error string `json:"error,omitempty"`
	// Total successful model loads since process start.
	// example: 1
	LoadsTotal uint64 `json:"loads_total" example:"1"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: text must not be empty
	Error string `json:"error" example:"text must not be empty"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
