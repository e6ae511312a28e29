package manager

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// EnsureReady returns the loaded handle, triggering a load if none is
// present. Concurrent callers coalesce: exactly one performs the load while
// the rest block until the attempt resolves, then all receive the same
// outcome. A failed state does not poison the manager; the next fresh caller
// re-attempts.
func (m *Manager) EnsureReady(ctx context.Context) (Handle, error) {
	for {
		m.mu.Lock()
		switch m.state {
		case StateReady:
			h := m.handle
			m.mu.Unlock()
			return h, nil

		case StateLoading:
			done := m.loadDone
			m.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				// The caller gives up waiting; the shared attempt
				// keeps running for everyone else.
				return nil, ctx.Err()
			}
			m.mu.Lock()
			if m.state == StateFailed {
				err := m.loadErr
				m.mu.Unlock()
				return nil, err
			}
			m.mu.Unlock()
			// Ready, or another caller already started a fresh
			// attempt. Re-evaluate.
			continue

		default: // StateUnloaded, StateFailed
			m.state = StateLoading
			m.loadErr = nil
			m.errMsg = ""
			done := make(chan struct{})
			m.loadDone = done
			m.mu.Unlock()
			return m.performLoad(done)
		}
	}
}

// performLoad runs the loader and commits the outcome. The attempt is
// detached from any caller context: abandoning callers must not cancel a
// load other waiters share. The configured timeout bounds the attempt so a
// stuck load resolves to failed instead of staying loading forever.
func (m *Manager) performLoad(done chan struct{}) (Handle, error) {
	start := time.Now()
	log.Info().Str("model", m.model).Msg("model load started")

	lctx, cancel := context.WithTimeout(context.Background(), m.loadTimeout)
	defer cancel()
	h, err := m.loader.Load(lctx)

	m.mu.Lock()
	if err != nil {
		m.state = StateFailed
		m.handle = nil
		m.loadErr = ErrLoad(err.Error())
		m.errMsg = err.Error()
		err = m.loadErr
	} else {
		m.state = StateReady
		m.handle = h
		m.loadsTotal++
	}
	close(done)
	m.mu.Unlock()

	dur := time.Since(start)
	if err != nil {
		log.Error().Str("model", m.model).Dur("dur", dur).Err(err).Msg("model load failed")
		observeLoad("failure", dur)
		return nil, err
	}
	log.Info().Str("model", m.model).Dur("dur", dur).Int("labels", len(h.Labels())).Msg("model load complete")
	observeLoad("success", dur)
	return h, nil
}
