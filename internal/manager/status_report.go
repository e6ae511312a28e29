package manager

import (
	"time"

	"emotiond/pkg/types"
)

// Snapshot returns a read-only view of the manager state. Never triggers a
// load, which is what distinguishes it from warmup.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Model: m.model, Err: m.errMsg}
}

// Status builds a detailed status response for GET /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	labels := 0
	if m.handle != nil {
		labels = len(m.handle.Labels())
	}
	return types.StatusResponse{
		State:          string(m.state),
		Model:          m.model,
		Labels:         labels,
		Error:          m.errMsg,
		LoadsTotal:     m.loadsTotal,
		UptimeSeconds:  int64(time.Since(m.startTime).Seconds()),
		ServerTimeUnix: time.Now().Unix(),
	}
}

// Health projects the lifecycle state into the monitoring shape served at
// GET /api/health.
func (m *Manager) Health() types.HealthResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp := types.HealthResponse{
		Status:      "healthy",
		ModelName:   m.model,
		ModelType:   defaultModelDescription,
		ModelStatus: "not_loaded",
	}
	switch m.state {
	case StateFailed:
		resp.Status = "unhealthy"
		resp.ModelStatus = "error: " + m.errMsg
	case StateLoading:
		resp.ModelStatus = "loading"
	case StateReady:
		resp.ModelStatus = "loaded"
	}
	return resp
}
