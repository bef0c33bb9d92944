package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/app/country/repo"
	"github.com/tkoivu/country-edit-service/internal/observability/metrics"
	httphandler "github.com/tkoivu/country-edit-service/internal/transport/http"
)

// setupTest wires the full HTTP surface over the stub store, the same
// composition cmd/server uses with the default configuration.
func setupTest(t *testing.T) (*httptest.Server, *repo.StubStore) {
	t.Helper()

	store := repo.NewStubStore(time.Millisecond)
	m := metrics.New()
	handler := httphandler.NewFormHandler(repo.NewInstrumentedStore(store, m), nil, m)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("GET /metrics", m.Handler())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, store
}

func call(t *testing.T, method, url string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestEditFormFlow(t *testing.T) {
	srv, store := setupTest(t)

	// Open a session; the stub fabricates the United Kingdom record.
	status, state := call(t, http.MethodPost, srv.URL+"/api/v1/sessions",
		map[string]string{"record_id": "c-1"})
	require.Equal(t, http.StatusCreated, status)
	sessionURL := srv.URL + "/api/v1/sessions/" + state["session_id"].(string)

	record := state["record"].(map[string]interface{})
	assert.Equal(t, "United Kingdom", record["name"])
	assert.Equal(t, "UK", record["code"])
	assert.Equal(t, false, state["dirty"])

	// Editing the name makes the session dirty and blocks navigation.
	status, state = call(t, http.MethodPatch, sessionURL+"/fields",
		map[string]string{"name": "United Kingdom 2"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, state["dirty"])

	status, state = call(t, http.MethodPost, sessionURL+"/leave", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, state["left"])

	// Saving persists exactly the working snapshot and clears dirty.
	status, state = call(t, http.MethodPost, sessionURL+"/save", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, state["dirty"])

	require.Equal(t, 1, store.SaveCount())
	saved, _ := store.LastSaved()
	assert.Equal(t, domain.Record{UID: "c-1", Name: "United Kingdom 2", Code: "UK"}, saved)

	// A clean session may leave.
	status, state = call(t, http.MethodPost, sessionURL+"/leave", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, state["left"])
}

func TestEditFormFlow_ResetInsteadOfSave(t *testing.T) {
	srv, store := setupTest(t)

	status, state := call(t, http.MethodPost, srv.URL+"/api/v1/sessions",
		map[string]string{"record_id": "c-7"})
	require.Equal(t, http.StatusCreated, status)
	sessionURL := srv.URL + "/api/v1/sessions/" + state["session_id"].(string)

	_, _ = call(t, http.MethodPatch, sessionURL+"/fields", map[string]string{"code": "GB"})

	status, state = call(t, http.MethodPost, sessionURL+"/reset", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, state["dirty"])
	record := state["record"].(map[string]interface{})
	assert.Equal(t, "UK", record["code"])
	assert.Zero(t, store.SaveCount())
}

func TestEditFormFlow_ValidationBlocksSave(t *testing.T) {
	srv, store := setupTest(t)

	status, state := call(t, http.MethodPost, srv.URL+"/api/v1/sessions",
		map[string]string{"record_id": "c-1"})
	require.Equal(t, http.StatusCreated, status)
	sessionURL := srv.URL + "/api/v1/sessions/" + state["session_id"].(string)

	_, _ = call(t, http.MethodPatch, sessionURL+"/fields", map[string]string{"name": ""})

	status, state = call(t, http.MethodPost, sessionURL+"/save", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	violations := state["violations"].([]interface{})
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].(map[string]interface{})["field"])
	assert.Zero(t, store.SaveCount())
}
