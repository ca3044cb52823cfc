package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-lite/hrms/app/api/mocks"
	"github.com/hrms-lite/hrms/app/store"
)

func TestNew(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	srv, err := New(Config{Store: mocks.NewStore(t), Version: "test"})
	require.NoError(t, err)
	assert.Equal(t, int64(64*1024), srv.maxBodySize)
	assert.Equal(t, "test", srv.version)
	assert.Zero(t, srv.rateLimit)

	srv, err = New(Config{Store: mocks.NewStore(t), MaxBodySize: 1024, RateLimit: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1024), srv.maxBodySize)
	assert.InDelta(t, 5.0, srv.rateLimit, 0.001)
}

func TestServer_Run(t *testing.T) {
	srv, err := New(Config{Store: mocks.NewStore(t)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Health(t *testing.T) {
	ts, _ := newTestServer(t, false)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy","service":"HRMS Lite API"}`, string(body))
	assert.Equal(t, "hrms", resp.Header.Get("App-Name"))
}

func TestServer_CORS(t *testing.T) {
	ts, _ := newTestServer(t, false)

	t.Run("preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/employees", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Less(t, resp.StatusCode, 300)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})

	t.Run("simple request", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/employees", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://example.com")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestServer_RateLimit(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	srv, err := New(Config{Store: st, RateLimit: 1})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)

	body := `{"employee_id":"E1","full_name":"A","email":"a@example.com","department":"D"}`
	resp, _ := doRequest(t, http.MethodPost, ts.URL+"/api/employees", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, data := doRequest(t, http.MethodPost, ts.URL+"/api/employees", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"rate limit exceeded"}`, string(data))

	// reads are not limited
	for range 3 {
		resp, _ = doRequest(t, http.MethodGet, ts.URL+"/api/employees", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestServer_SizeLimit(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	srv, err := New(Config{Store: st, MaxBodySize: 128})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)

	big := `{"employee_id":"E1","full_name":"` + string(bytes.Repeat([]byte("x"), 512)) +
		`","email":"a@example.com","department":"D"}`
	resp, _ := doRequest(t, http.MethodPost, ts.URL+"/api/employees", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestServer_NotFoundRoute(t *testing.T) {
	ts, _ := newTestServer(t, false)
	for _, path := range []string{"/api/unknown", "/api/employees/E1/extra", "/nope"} {
		resp, body := doRequest(t, http.MethodGet, ts.URL+path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"), path)
		assert.JSONEq(t, `{"detail":"Not Found"}`, string(body), path)
	}
}

// newTestServer makes api server backed by a fresh sqlite store, optionally seeded with sample data
func newTestServer(t *testing.T, seed bool) (*httptest.Server, *store.SQLiteStore) {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	if seed {
		fx, err := store.DefaultFixture()
		require.NoError(t, err)
		_, err = st.Seed(t.Context(), fx)
		require.NoError(t, err)
	}

	srv, err := New(Config{Store: st, Version: "test"})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	return ts, st
}

// doRequest sends a request with optional JSON body and returns response with fully read body
func doRequest(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// decodeBody unmarshals JSON response body into T
func decodeBody[T any](t *testing.T, data []byte) T {
	t.Helper()
	var res T
	require.NoError(t, json.Unmarshal(data, &res), string(data))
	return res
}
