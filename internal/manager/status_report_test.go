package manager

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestHealthProjection(t *testing.T) {
	ld := &countingLoader{handle: &fakeHandle{labels: []string{"joy", "neutral"}}}
	m := New(ld, "org/model")

	h := m.Health()
	if h.Status != "healthy" || h.ModelStatus != "not_loaded" {
		t.Fatalf("unexpected initial health: %+v", h)
	}
	if h.ModelName != "org/model" || h.ModelType != "multi-label emotion classification" {
		t.Fatalf("unexpected health identity: %+v", h)
	}
	// Health never triggers a load.
	if ld.calls != 0 {
		t.Fatalf("health must not load, got %d loads", ld.calls)
	}

	if _, err := m.EnsureReady(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	h = m.Health()
	if h.Status != "healthy" || h.ModelStatus != "loaded" {
		t.Fatalf("unexpected ready health: %+v", h)
	}
}

func TestHealthProjectionAfterFailure(t *testing.T) {
	m := New(&countingLoader{err: errors.New("disk full")}, "org/model")
	if _, err := m.EnsureReady(context.Background()); err == nil {
		t.Fatalf("expected load failure")
	}
	h := m.Health()
	if h.Status != "unhealthy" || !strings.HasPrefix(h.ModelStatus, "error: ") {
		t.Fatalf("unexpected failed health: %+v", h)
	}
	if !strings.Contains(h.ModelStatus, "disk full") {
		t.Fatalf("error detail missing: %+v", h)
	}
}

func TestStatusFields(t *testing.T) {
	m := New(&countingLoader{handle: &fakeHandle{labels: []string{"a", "b", "c"}}}, "org/model")

	st := m.Status()
	if st.State != "unloaded" || st.Labels != 0 || st.LoadsTotal != 0 {
		t.Fatalf("unexpected initial status: %+v", st)
	}

	if _, err := m.EnsureReady(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	st = m.Status()
	if st.State != "ready" || st.Labels != 3 || st.LoadsTotal != 1 {
		t.Fatalf("unexpected ready status: %+v", st)
	}
	if st.Model != "org/model" || st.ServerTimeUnix == 0 {
		t.Fatalf("unexpected status identity: %+v", st)
	}
}

func TestCloseReleasesHandle(t *testing.T) {
	h := &fakeHandle{}
	m := New(&countingLoader{handle: h}, "org/model")
	if _, err := m.EnsureReady(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !h.closed {
		t.Fatalf("expected handle closed")
	}
	if m.Ready() {
		t.Fatalf("expected not ready after close")
	}
}
