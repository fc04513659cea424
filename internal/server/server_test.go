package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwarzynski/uw-turing-machine/internal/cache"
	"github.com/mwarzynski/uw-turing-machine/internal/logging"
)

const immediateAccept = "start 0 0 accept 0 0 S S\n"

func newTestServer(t *testing.T) (*httptest.Server, cache.Store) {
	t.Helper()
	store := cache.NewMemory()
	ts := httptest.NewServer(NewHandler(store, logging.NewNop()))
	t.Cleanup(ts.Close)
	return ts, store
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTranslate(t *testing.T) {
	ts, store := newTestServer(t)

	resp, err := http.Post(ts.URL+"/translate", "text/plain", strings.NewReader(immediateAccept))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	table := string(body)
	assert.Contains(t, table, "{start}")

	// The table is cached under the content hash of the request body.
	cached, ok, err := store.Get(t.Context(), cache.Key([]byte(immediateAccept)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, table, cached)

	// A second identical request is served from the cache.
	resp2, err := http.Post(ts.URL+"/translate", "text/plain", strings.NewReader(immediateAccept))
	require.NoError(t, err)
	defer resp2.Body.Close()
	body2, err := io.ReadAll(resp2.Body)
	require.NoError(t, err)
	assert.Equal(t, table, string(body2))
}

func TestTranslate_MalformedInput(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/translate", "text/plain", strings.NewReader("start 0 0 accept\n"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRun(t *testing.T) {
	ts, _ := newTestServer(t)

	// Translate first, then run the resulting table on the empty tape.
	resp, err := http.Post(ts.URL+"/translate", "text/plain", strings.NewReader(immediateAccept))
	require.NoError(t, err)
	table, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	reqBody, err := json.Marshal(RunRequest{Machine: string(table), Tape: "", Steps: 100000})
	require.NoError(t, err)

	resp, err = http.Post(ts.URL+"/run", "application/json", bytes.NewReader(reqBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out RunResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Accepted)
	assert.True(t, out.Halted)
	assert.Equal(t, "accept", out.State)
}

func TestRun_RejectsNonPositiveSteps(t *testing.T) {
	ts, _ := newTestServer(t)

	reqBody, err := json.Marshal(RunRequest{Machine: immediateAccept, Tape: "", Steps: 0})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/run", "application/json", bytes.NewReader(reqBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
