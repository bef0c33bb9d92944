// Package session implements the form-session layer: action gating and
// navigation interception over one presenter/editor pair.
package session

import (
	"context"

	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/app/country/presenter"
)

// FormSession is one user's edit session for one record. It receives its
// presenter explicitly and is discarded together with it when the user
// leaves; nothing is shared between sessions.
type FormSession struct {
	id        string
	presenter *presenter.Presenter
}

// NewFormSession creates a session around the given presenter.
func NewFormSession(id string, p *presenter.Presenter) *FormSession {
	return &FormSession{
		id:        id,
		presenter: p,
	}
}

// ID returns the session identifier.
func (s *FormSession) ID() string {
	return s.id
}

// Editor returns the edit buffer for field binding. Input events mutate
// it directly through the setters.
func (s *FormSession) Editor() *domain.Editor {
	return s.presenter.Editor()
}

// Load fetches the record into the session's editor.
func (s *FormSession) Load(ctx context.Context, uid string) error {
	return s.presenter.GetItem(ctx, uid)
}

// Validate evaluates the rule set against the current working fields.
func (s *FormSession) Validate() []domain.Violation {
	return domain.Validate(s.Editor().Snapshot())
}

// Save validates the working snapshot and, when clean of violations,
// persists it. Nonempty violations block the save and are returned for
// display; the editor is not touched. A store failure leaves the editor
// dirty so the user may retry.
func (s *FormSession) Save(ctx context.Context) ([]domain.Violation, error) {
	if violations := s.Validate(); len(violations) > 0 {
		return violations, nil
	}
	return nil, s.presenter.SaveItem(ctx)
}

// Reset discards in-progress edits.
func (s *FormSession) Reset() {
	s.presenter.Reset()
}

// CanSave reports whether the save action should be enabled.
func (s *FormSession) CanSave() bool {
	return s.Editor().IsDirty()
}

// CanReset reports whether the reset action should be enabled.
func (s *FormSession) CanReset() bool {
	return s.Editor().IsDirty()
}

// Leave is the navigation-interception hook. Navigation is denied while
// the editor is dirty. With force set (the user-confirmed override) the
// session resets first and then allows the navigation.
func (s *FormSession) Leave(force bool) bool {
	if !s.Editor().IsDirty() {
		return true
	}
	if force {
		s.Reset()
		return true
	}
	return false
}
