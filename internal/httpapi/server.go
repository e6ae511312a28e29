package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"emotiond/internal/manager"
	"emotiond/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Status() types.StatusResponse
	Health() types.HealthResponse
	EnsureReady(ctx context.Context) (manager.Handle, error)
	Predict(ctx context.Context, text string, threshold float64) (types.Prediction, error)
	DefaultThreshold() float64
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   corsAllowedMethods,
			AllowedHeaders:   corsAllowedHeaders,
			AllowCredentials: true,
		}))
	}

	r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.MessageResponse{
			Message: "Emotion Analysis API is running",
			Status:  "healthy",
		})
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Health())
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Post("/api/warmup", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if svc.Ready() {
			writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Model already loaded", Status: "ready"})
			return
		}
		if _, err := svc.EnsureReady(r.Context()); err != nil {
			logRequest(r).Dur("dur", time.Since(start)).Err(err).Msg("warmup failed")
			writeJSONError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		logRequest(r).Dur("dur", time.Since(start)).Msg("warmup complete")
		writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Model loaded successfully", Status: "ready"})
	})

	r.Post("/api/predict", func(w http.ResponseWriter, r *http.Request) {
		// Content-Type check
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		// Limit body size (configurable, default 1MiB)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		threshold := svc.DefaultThreshold()
		if v := r.URL.Query().Get("threshold"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "threshold must be a number")
				return
			}
			threshold = f
		}

		start := time.Now()
		pred, err := svc.Predict(r.Context(), req.Text, threshold)
		if err != nil {
			// If the client went away, just return.
			if r.Context().Err() != nil {
				return
			}
			status := statusForError(err)
			logRequest(r).Int("status", status).Dur("dur", time.Since(start)).Err(err).Msg("predict end")
			writeJSONError(w, status, err.Error())
			return
		}
		logRequest(r).Int("status", http.StatusOK).Dur("dur", time.Since(start)).
			Int("emotions", len(pred.Emotions)).Msg("predict end")
		writeJSON(w, http.StatusOK, types.PredictResponse{
			Success:      true,
			Emotions:     pred.Emotions,
			TextAnalyzed: pred.TextAnalyzed,
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// statusForError maps well-known manager errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case manager.IsInvalidInput(err):
		return http.StatusBadRequest
	case manager.IsLoad(err):
		return http.StatusServiceUnavailable
	case manager.IsInference(err):
		return http.StatusInternalServerError
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
