package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// zlog is an optional structured logger. If unset, falls back to the global
// zerolog logger.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// logRequest starts an info event tagged with the request path and id.
func logRequest(r *http.Request) *zerolog.Event {
	var e *zerolog.Event
	if zlog != nil {
		e = zlog.Info()
	} else {
		e = log.Info()
	}
	e = e.Str("path", r.URL.Path)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		e = e.Str("request_id", rid)
	}
	return e
}
