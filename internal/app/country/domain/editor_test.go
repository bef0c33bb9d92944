package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var uk = Record{UID: "c-1", Name: "United Kingdom", Code: "UK"}

func TestEditor_Load(t *testing.T) {
	e := NewEditor()
	e.Load(uk)

	assert.False(t, e.IsDirty())
	assert.Equal(t, uk, e.Snapshot())
	assert.Equal(t, uk, e.Baseline())
}

func TestEditor_Empty(t *testing.T) {
	e := NewEditor()

	assert.False(t, e.IsDirty())
	assert.True(t, e.Snapshot().IsEmpty())
}

func TestEditor_DirtyTracking(t *testing.T) {
	t.Run("mutation makes editor dirty", func(t *testing.T) {
		e := NewEditor()
		e.Load(uk)

		e.SetName("United Kingdom 2")
		assert.True(t, e.IsDirty())
	})

	t.Run("restoring baseline value clears dirty", func(t *testing.T) {
		e := NewEditor()
		e.Load(uk)

		e.SetName("United Kingdom 2")
		e.SetName("United Kingdom")
		assert.False(t, e.IsDirty())
	})

	t.Run("each field is tracked", func(t *testing.T) {
		e := NewEditor()
		e.Load(uk)

		e.SetCode("GB")
		assert.True(t, e.IsDirty())
	})

	t.Run("baseline is untouched by mutations", func(t *testing.T) {
		e := NewEditor()
		e.Load(uk)

		e.SetName("Scotland")
		e.SetCode("SC")
		assert.Equal(t, uk, e.Baseline())
	})
}

func TestEditor_Reset(t *testing.T) {
	e := NewEditor()
	e.Load(uk)

	e.SetName("United Kingdom 2")
	e.SetCode("GB")
	e.Reset()

	assert.False(t, e.IsDirty())
	assert.Equal(t, uk, e.Snapshot())
}

func TestEditor_Reload(t *testing.T) {
	e := NewEditor()
	e.Load(uk)
	e.SetName("United Kingdom 2")

	saved := e.Snapshot()
	e.Load(saved)

	assert.False(t, e.IsDirty())
	assert.Equal(t, saved, e.Baseline())
}

func TestEditor_SnapshotIsPure(t *testing.T) {
	e := NewEditor()
	e.Load(uk)
	e.SetName("United Kingdom 2")

	first := e.Snapshot()
	second := e.Snapshot()

	assert.Equal(t, first, second)
	assert.True(t, e.IsDirty())
}

func TestRecord_Equality(t *testing.T) {
	assert.True(t, uk.Equal(Record{UID: "c-1", Name: "United Kingdom", Code: "UK"}))
	assert.False(t, uk.Equal(Record{UID: "c-1", Name: "United Kingdom", Code: "GB"}))
	assert.True(t, Record{}.IsEmpty())
	assert.False(t, uk.IsEmpty())
}
