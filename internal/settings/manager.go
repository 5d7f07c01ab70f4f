// Package settings persists each visitor's equipment selection and day
// completion state in their server-side session so it follows them across
// page loads without an account.
package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/alexedwards/scs/v2"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/workout"
)

const sessionKey = "preferences"

type payload struct {
	Equipment     []workout.Category `json:"equipment"`
	CompletedDays []int              `json:"completed_days"`
}

type Manager struct {
	sessions *scs.SessionManager
	logger   *slog.Logger
}

func NewManager(sessions *scs.SessionManager, logger *slog.Logger) *Manager {
	return &Manager{sessions: sessions, logger: logger}
}

// load returns the visitor's stored preferences. First-time visitors start
// with every equipment category selected and no completed days.
func (m *Manager) load(ctx context.Context) payload {
	defaults := payload{Equipment: workout.FullEquipmentSet().List()}
	raw := m.sessions.GetBytes(ctx, sessionKey)
	if raw == nil {
		return defaults
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt state falls back to defaults rather than failing the page.
		m.logger.LogAttrs(ctx, slog.LevelWarn, "discarding corrupt preferences",
			errors.SlogError(err))
		return defaults
	}
	return p
}

func (m *Manager) store(ctx context.Context, p payload) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal preferences")
	}
	m.sessions.Put(ctx, sessionKey, raw)
	return nil
}

// Equipment returns the visitor's selected equipment.
func (m *Manager) Equipment(ctx context.Context) workout.EquipmentSet {
	return workout.NewEquipmentSet(m.load(ctx).Equipment...)
}

// ToggleEquipment flips ownership of one category and returns the updated
// set.
func (m *Manager) ToggleEquipment(ctx context.Context, category workout.Category) (workout.EquipmentSet, error) {
	p := m.load(ctx)
	set := workout.NewEquipmentSet(p.Equipment...)
	set.Toggle(category)
	p.Equipment = set.List()
	if err := m.store(ctx, p); err != nil {
		return nil, err
	}
	return set, nil
}

// SetEquipment replaces the selection wholesale. Bodyweight stays selected
// no matter what the caller passes.
func (m *Manager) SetEquipment(ctx context.Context, categories []workout.Category) (workout.EquipmentSet, error) {
	p := m.load(ctx)
	set := workout.NewEquipmentSet(categories...)
	p.Equipment = set.List()
	if err := m.store(ctx, p); err != nil {
		return nil, err
	}
	return set, nil
}

// CompletedDays returns the set of day identifiers the visitor has marked
// done.
func (m *Manager) CompletedDays(ctx context.Context) map[int]bool {
	completed := make(map[int]bool)
	for _, id := range m.load(ctx).CompletedDays {
		completed[id] = true
	}
	return completed
}

// ToggleDayComplete flips completion of exactly the given day and reports
// the new state. Other days are never touched.
func (m *Manager) ToggleDayComplete(ctx context.Context, dayID int) (bool, error) {
	p := m.load(ctx)
	idx := slices.Index(p.CompletedDays, dayID)
	done := idx < 0
	if done {
		p.CompletedDays = append(p.CompletedDays, dayID)
		slices.Sort(p.CompletedDays)
	} else {
		p.CompletedDays = slices.Delete(p.CompletedDays, idx, idx+1)
	}
	if err := m.store(ctx, p); err != nil {
		return false, err
	}
	return done, nil
}

// ResetProgress clears every completed day but leaves the equipment
// selection alone.
func (m *Manager) ResetProgress(ctx context.Context) error {
	p := m.load(ctx)
	p.CompletedDays = nil
	return m.store(ctx, p)
}

// Progress reports how many days of the program are done.
func (m *Manager) Progress(ctx context.Context) (done, total int) {
	return len(m.load(ctx).CompletedDays), workout.TotalDays
}
