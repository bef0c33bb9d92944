package domain

// Editor is the edit buffer for a single country record: a mutable
// working copy held against an immutable baseline snapshot.
//
// The baseline is replaced only by Load. Working fields may diverge from
// it at any time; dirtiness is derived on every call by comparing a fresh
// Snapshot against the baseline, so it is always consistent with the
// latest field values. Keeping the baseline separate from the working
// fields is what lets a form offer save, reset and dirty-gated
// navigation without any change log or undo stack.
type Editor struct {
	uid  string
	name string
	code string

	baseline Record
}

// NewEditor creates an empty Editor. An empty editor is clean: its
// working fields and baseline are both zero.
func NewEditor() *Editor {
	return &Editor{}
}

// Load replaces the baseline and all working fields with the values of
// rec. The record is trusted (validated upstream); after Load the editor
// is clean.
func (e *Editor) Load(rec Record) {
	e.baseline = rec
	e.uid = rec.UID
	e.name = rec.Name
	e.code = rec.Code
}

// Reset discards in-progress edits by reloading the baseline.
func (e *Editor) Reset() {
	e.Load(e.baseline)
}

// SetName assigns the working name. No validation happens here;
// validation is a separate on-demand pass.
func (e *Editor) SetName(name string) {
	e.name = name
}

// SetCode assigns the working code.
func (e *Editor) SetCode(code string) {
	e.code = code
}

// UID returns the working record identifier.
func (e *Editor) UID() string {
	return e.uid
}

// Name returns the working name.
func (e *Editor) Name() string {
	return e.name
}

// Code returns the working code.
func (e *Editor) Code() string {
	return e.code
}

// Snapshot materializes the current working fields into a Record.
// It never mutates editor state.
func (e *Editor) Snapshot() Record {
	return Record{
		UID:  e.uid,
		Name: e.name,
		Code: e.code,
	}
}

// Baseline returns the snapshot the editor was last loaded from.
func (e *Editor) Baseline() Record {
	return e.baseline
}

// IsDirty reports whether the working fields differ from the baseline.
// Computed on each call, never cached.
func (e *Editor) IsDirty() bool {
	return e.Snapshot() != e.baseline
}
