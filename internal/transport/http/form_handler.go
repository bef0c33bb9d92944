// Package http exposes the form surface as a JSON API: session
// lifecycle, field binding, dirty-gated actions and the
// navigation-interception endpoint.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/tkoivu/country-edit-service/internal/app/country/contracts"
	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/app/country/presenter"
	"github.com/tkoivu/country-edit-service/internal/app/country/session"
	"github.com/tkoivu/country-edit-service/internal/observability/metrics"
)

// FormHandler serves the form-session API.
type FormHandler struct {
	store    contracts.RecordStore
	revLog   contracts.RevisionLog // nil when the backend keeps no journal
	metrics  *metrics.Metrics
	registry *sessionRegistry
}

// NewFormHandler creates a FormHandler. revLog may be nil.
func NewFormHandler(store contracts.RecordStore, revLog contracts.RevisionLog, m *metrics.Metrics) *FormHandler {
	return &FormHandler{
		store:    store,
		revLog:   revLog,
		metrics:  m,
		registry: newSessionRegistry(),
	}
}

// Register mounts all routes on the mux.
func (h *FormHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/sessions", h.openSession)
	mux.HandleFunc("GET /api/v1/sessions/{id}", h.getSession)
	mux.HandleFunc("PATCH /api/v1/sessions/{id}/fields", h.patchFields)
	mux.HandleFunc("POST /api/v1/sessions/{id}/save", h.save)
	mux.HandleFunc("POST /api/v1/sessions/{id}/reset", h.reset)
	mux.HandleFunc("POST /api/v1/sessions/{id}/leave", h.leave)
	mux.HandleFunc("GET /api/v1/records/{id}/revisions", h.listRevisions)
}

type recordBody struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type sessionState struct {
	SessionID string     `json:"session_id"`
	Record    recordBody `json:"record"`
	Baseline  recordBody `json:"baseline"`
	Dirty     bool       `json:"dirty"`
	CanSave   bool       `json:"can_save"`
	CanReset  bool       `json:"can_reset"`
}

func toRecordBody(rec domain.Record) recordBody {
	return recordBody{UID: rec.UID, Name: rec.Name, Code: rec.Code}
}

func stateOf(s *session.FormSession) sessionState {
	return sessionState{
		SessionID: s.ID(),
		Record:    toRecordBody(s.Editor().Snapshot()),
		Baseline:  toRecordBody(s.Editor().Baseline()),
		Dirty:     s.Editor().IsDirty(),
		CanSave:   s.CanSave(),
		CanReset:  s.CanReset(),
	}
}

func (h *FormHandler) openSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecordID string `json:"record_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RecordID == "" {
		writeError(w, http.StatusBadRequest, "record_id is required")
		return
	}

	s := session.NewFormSession(uuid.NewString(), presenter.NewPresenter(h.store))
	if err := s.Load(r.Context(), req.RecordID); err != nil {
		writeFetchError(w, err)
		return
	}

	h.registry.add(s)
	h.metrics.SessionOpened()
	writeJSON(w, http.StatusCreated, stateOf(s))
}

func (h *FormHandler) getSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateOf(s))
}

func (h *FormHandler) patchFields(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Name *string `json:"name"` // nil = no change
		Code *string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil {
		s.Editor().SetName(*req.Name)
	}
	if req.Code != nil {
		s.Editor().SetCode(*req.Code)
	}

	writeJSON(w, http.StatusOK, stateOf(s))
}

func (h *FormHandler) save(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	violations, err := s.Save(r.Context())
	if len(violations) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"violations": violations,
		})
		return
	}
	if err != nil {
		// The editor stays dirty; the client may retry.
		writeError(w, http.StatusServiceUnavailable, "save failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stateOf(s))
}

func (h *FormHandler) reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Reset()
	writeJSON(w, http.StatusOK, stateOf(s))
}

func (h *FormHandler) leave(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Force bool `json:"force"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if !s.Leave(req.Force) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"left":  false,
			"dirty": true,
		})
		return
	}

	h.registry.remove(s.ID())
	h.metrics.SessionClosed()
	writeJSON(w, http.StatusOK, map[string]interface{}{"left": true})
}

type revisionBody struct {
	RevisionID string     `json:"revision_id"`
	Record     recordBody `json:"record"`
	SavedAt    string     `json:"saved_at"`
}

func (h *FormHandler) listRevisions(w http.ResponseWriter, r *http.Request) {
	if h.revLog == nil {
		writeError(w, http.StatusNotImplemented, "store keeps no revision journal")
		return
	}

	limit := int64(20)
	revs, err := h.revLog.Revisions(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "list revisions failed: "+err.Error())
		return
	}

	out := make([]revisionBody, 0, len(revs))
	for _, rev := range revs {
		out = append(out, revisionBody{
			RevisionID: rev.RevisionID,
			Record:     toRecordBody(rev.Record),
			SavedAt:    rev.SavedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"revisions": out})
}

func (h *FormHandler) session(w http.ResponseWriter, r *http.Request) (*session.FormSession, bool) {
	s, ok := h.registry.get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return s, true
}

func writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, domain.ErrEmptyRecord), errors.Is(err, domain.ErrRecordMismatch):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusServiceUnavailable, "fetch failed: "+err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
