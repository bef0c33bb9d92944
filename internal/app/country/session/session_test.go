package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/app/country/presenter"
)

type fixedStore struct {
	record  domain.Record
	saveErr error
	saved   []domain.Record
}

func (f *fixedStore) Fetch(ctx context.Context, uid string) (domain.Record, error) {
	return f.record, nil
}

func (f *fixedStore) Save(ctx context.Context, rec domain.Record) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rec)
	return nil
}

func newLoadedSession(t *testing.T, store *fixedStore) *FormSession {
	t.Helper()
	s := NewFormSession("sess-1", presenter.NewPresenter(store))
	require.NoError(t, s.Load(context.Background(), store.record.UID))
	return s
}

func ukStore() *fixedStore {
	return &fixedStore{record: domain.Record{UID: "c-1", Name: "United Kingdom", Code: "UK"}}
}

func TestFormSession_ActionGating(t *testing.T) {
	s := newLoadedSession(t, ukStore())

	assert.False(t, s.CanSave())
	assert.False(t, s.CanReset())

	s.Editor().SetName("United Kingdom 2")
	assert.True(t, s.CanSave())
	assert.True(t, s.CanReset())

	s.Reset()
	assert.False(t, s.CanSave())
	assert.False(t, s.CanReset())
}

func TestFormSession_Save(t *testing.T) {
	t.Run("persists a valid snapshot", func(t *testing.T) {
		store := ukStore()
		s := newLoadedSession(t, store)
		s.Editor().SetName("United Kingdom 2")

		violations, err := s.Save(context.Background())
		require.NoError(t, err)
		assert.Empty(t, violations)
		require.Len(t, store.saved, 1)
		assert.Equal(t, domain.Record{UID: "c-1", Name: "United Kingdom 2", Code: "UK"}, store.saved[0])
		assert.False(t, s.Editor().IsDirty())
	})

	t.Run("violations block the save", func(t *testing.T) {
		store := ukStore()
		s := newLoadedSession(t, store)
		s.Editor().SetName("")

		violations, err := s.Save(context.Background())
		require.NoError(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, domain.FieldName, violations[0].Field)
		assert.Empty(t, store.saved)
		assert.True(t, s.Editor().IsDirty())
	})

	t.Run("store failure keeps the editor dirty", func(t *testing.T) {
		store := ukStore()
		store.saveErr = errors.New("store unavailable")
		s := newLoadedSession(t, store)
		s.Editor().SetName("United Kingdom 2")

		violations, err := s.Save(context.Background())
		require.Error(t, err)
		assert.Empty(t, violations)
		assert.True(t, s.Editor().IsDirty())
	})
}

func TestFormSession_Leave(t *testing.T) {
	t.Run("clean session may leave", func(t *testing.T) {
		s := newLoadedSession(t, ukStore())
		assert.True(t, s.Leave(false))
	})

	t.Run("dirty session is blocked", func(t *testing.T) {
		s := newLoadedSession(t, ukStore())
		s.Editor().SetName("United Kingdom 2")
		assert.False(t, s.Leave(false))
		// Edits survive a denied leave.
		assert.Equal(t, "United Kingdom 2", s.Editor().Name())
	})

	t.Run("forced leave resets then allows", func(t *testing.T) {
		s := newLoadedSession(t, ukStore())
		s.Editor().SetName("United Kingdom 2")
		assert.True(t, s.Leave(true))
		assert.False(t, s.Editor().IsDirty())
		assert.Equal(t, "United Kingdom", s.Editor().Name())
	})
}

func TestFormSession_Validate(t *testing.T) {
	s := newLoadedSession(t, ukStore())
	s.Editor().SetCode("ABCDE")

	violations := s.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, domain.FieldCode, violations[0].Field)
	assert.Equal(t, domain.RuleMaxLength, violations[0].Rule)
}
