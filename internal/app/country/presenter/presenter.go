// Package presenter mediates between the record store and the edit
// buffer on behalf of one form session.
package presenter

import (
	"context"
	"fmt"

	"github.com/tkoivu/country-edit-service/internal/app/country/contracts"
	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
)

// Presenter drives load, save and reset for a single Editor. It holds
// exactly one Editor instance for its whole lifetime and never replaces
// it, so external references to the editor stay valid across
// GetItem/SaveItem/Reset. The store dependency is passed explicitly at
// construction.
type Presenter struct {
	store  contracts.RecordStore
	editor *domain.Editor
}

// NewPresenter creates a Presenter with a fresh empty Editor.
func NewPresenter(store contracts.RecordStore) *Presenter {
	return &Presenter{
		store:  store,
		editor: domain.NewEditor(),
	}
}

// Editor returns the presenter's edit buffer for field binding.
func (p *Presenter) Editor() *domain.Editor {
	return p.editor
}

// GetItem fetches the record with the given identifier and loads it into
// the editor. A fetched record that is empty or carries a different
// identifier than requested is rejected. On any failure the editor is
// left exactly as it was.
func (p *Presenter) GetItem(ctx context.Context, uid string) error {
	rec, err := p.store.Fetch(ctx, uid)
	if err != nil {
		return fmt.Errorf("fetch record %q: %w", uid, err)
	}

	if rec.IsEmpty() {
		return domain.ErrEmptyRecord
	}
	if rec.UID != uid {
		return domain.ErrRecordMismatch
	}

	p.editor.Load(rec)
	return nil
}

// SaveItem materializes the editor's working fields and persists the
// snapshot. On success the editor is reloaded from the saved snapshot,
// so the baseline matches what is persisted and dirty clears. On failure
// the editor keeps its working values and stays dirty, leaving the user
// free to retry.
func (p *Presenter) SaveItem(ctx context.Context) error {
	snap := p.editor.Snapshot()

	if err := p.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("save record %q: %w", snap.UID, err)
	}

	p.editor.Load(snap)
	return nil
}

// Reset discards in-progress edits.
func (p *Presenter) Reset() {
	p.editor.Reset()
}
