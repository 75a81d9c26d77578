// Package onboarding tracks whether the user has been through the onboarding
// flow, which version of it, and the answers they gave.
package onboarding

import (
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/BrandonKowalski/uikit/pkg/uikit/logging"
)

// Manager reads and writes onboarding flags through a Store. Create one per
// application scope and pass it to whatever needs it.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	current string
	flags   Flags
	logger  *slog.Logger
	now     func() time.Time
}

// NewManager loads the stored flags. currentVersion is the version of the
// onboarding flow shipped with the running application.
func NewManager(store Store, currentVersion string, logger *slog.Logger) (*Manager, error) {
	flags, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load onboarding flags: %w", err)
	}
	return &Manager{
		store:   store,
		current: currentVersion,
		flags:   flags,
		logger:  logging.OrDiscard(logger),
		now:     time.Now,
	}, nil
}

// HasCompleted reports whether onboarding was completed at some version.
func (m *Manager) HasCompleted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags.Completed
}

// Version returns the stored version, "" if onboarding never completed.
func (m *Manager) Version() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags.Version
}

// CurrentVersion returns the version the manager was created with.
func (m *Manager) CurrentVersion() string {
	return m.current
}

// CompletedAt returns when onboarding was completed, zero if it was not.
func (m *Manager) CompletedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags.CompletedAt
}

// NeedsOnboarding reports whether the flow should be shown: it was never
// completed, or it was completed at a version older than the current one.
func (m *Manager) NeedsOnboarding() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.flags.Completed || CompareVersions(m.flags.Version, m.current) < 0
}

// Complete marks onboarding completed at the current version.
func (m *Manager) Complete() error {
	return m.update("complete", func(f *Flags) {
		f.Completed = true
		f.Version = m.current
		f.CompletedAt = m.now()
	})
}

// Reset forgets completion and all responses.
func (m *Manager) Reset() error {
	return m.update("reset", func(f *Flags) {
		*f = Flags{}
	})
}

// SetResponse records one answer, overwriting any earlier answer for key.
func (m *Manager) SetResponse(key, value string) error {
	return m.update("set_response", func(f *Flags) {
		if f.Responses == nil {
			f.Responses = make(map[string]string)
		}
		f.Responses[key] = value
	})
}

// Response returns the answer recorded for key.
func (m *Manager) Response(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.flags.Responses[key]
	return v, ok
}

// Responses returns a copy of every recorded answer.
func (m *Manager) Responses() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.flags.Responses))
	maps.Copy(out, m.flags.Responses)
	return out
}

// update applies fn to a copy of the flags and keeps the result only if the
// store accepted it.
func (m *Manager) update(op string, fn func(*Flags)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.flags.clone()
	fn(&next)
	if err := m.store.Save(next); err != nil {
		m.logger.Error("Failed to save onboarding flags", "op", op, "error", err)
		return fmt.Errorf("save onboarding flags: %w", err)
	}
	m.flags = next
	m.logger.Debug("onboarding updated", "op", op, "completed", next.Completed, "version", next.Version)
	return nil
}
