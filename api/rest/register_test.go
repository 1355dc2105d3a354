package rest_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restapi "github.com/hedisam/ringbuffer/api/rest"
	"github.com/hedisam/ringbuffer/internal/store/memdb"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	restapi.NewServer(logrus.New(), memdb.NewBufferStore(memdb.WithMaxCapacity(16))).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, strings.TrimSpace(string(data))
}

func TestBufferEndpoints(t *testing.T) {
	srv := newTestServer(t)

	steps := []struct {
		method       string
		path         string
		body         string
		expectedCode int
		expectedBody string
	}{
		{http.MethodPut, "/api/v1/buffers/jobs", `{"capacity": 3}`, http.StatusOK, `{"buffer":{"name":"jobs","len":0,"capacity":3}}`},
		{http.MethodPut, "/api/v1/buffers/jobs", `{"capacity": 3}`, http.StatusConflict, `{"message":"Buffer already exists"}`},
		{http.MethodPost, "/api/v1/buffers/jobs/back", `{"items": ["a", "b"]}`, http.StatusOK, `{"buffer":{"name":"jobs","len":2,"capacity":3}}`},
		{http.MethodPost, "/api/v1/buffers/jobs/front", `{"items": ["x"]}`, http.StatusOK, `{"buffer":{"name":"jobs","len":3,"capacity":3}}`},
		{http.MethodPost, "/api/v1/buffers/jobs/front", `{"items": ["y"]}`, http.StatusConflict, `{"message":"Buffer is full: push 1 items with 0 free slots: ring buffer is full"}`},
		{http.MethodGet, "/api/v1/buffers/jobs", "", http.StatusOK, `{"buffer":{"name":"jobs","len":3,"capacity":3},"items":["x","a","b"]}`},
		{http.MethodGet, "/api/v1/buffers/jobs?reversed=true", "", http.StatusOK, `{"buffer":{"name":"jobs","len":3,"capacity":3},"items":["b","a","x"]}`},
		{http.MethodGet, "/api/v1/buffers/jobs?reversed=maybe", "", http.StatusBadRequest, `{"message":"invalid value for 'reversed': expected a boolean"}`},
		{http.MethodGet, "/api/v1/buffers/jobs/at/-1", "", http.StatusOK, `{"index":-1,"item":"b"}`},
		{http.MethodGet, "/api/v1/buffers/jobs/at/3", "", http.StatusNotFound, `{"message":"No item at index 3"}`},
		{http.MethodGet, "/api/v1/buffers/jobs/back?count=2", "", http.StatusOK, `{"items":["b","a"]}`},
		{http.MethodDelete, "/api/v1/buffers/jobs/front", "", http.StatusOK, `{"items":["x"]}`},
		{http.MethodDelete, "/api/v1/buffers/jobs/back?count=5", "", http.StatusConflict, `{"message":"Not enough items: pop 5 items from back: ring buffer has insufficient items: requested 5, available 2"}`},
		{http.MethodGet, "/api/v1/buffers/", "", http.StatusOK, `{"buffers":[{"name":"jobs","len":2,"capacity":3}]}`},
		{http.MethodPost, "/api/v1/buffers/jobs/back", `{"items": [`, http.StatusBadRequest, `{"message":"Invalid request body"}`},
		{http.MethodDelete, "/api/v1/buffers/jobs", "", http.StatusOK, `{"ok":true}`},
		{http.MethodGet, "/api/v1/buffers/jobs", "", http.StatusNotFound, `{"message":"Buffer not found"}`},
	}

	for _, step := range steps {
		code, body := do(t, srv, step.method, step.path, step.body)
		assert.Equal(t, step.expectedCode, code, "%s %s", step.method, step.path)
		assert.JSONEq(t, step.expectedBody, body, "%s %s", step.method, step.path)
	}
}

func TestZeroCapacityBufferEndpoints(t *testing.T) {
	srv := newTestServer(t)

	code, body := do(t, srv, http.MethodPut, "/api/v1/buffers/zero", `{"capacity": 0}`)
	require.Equal(t, http.StatusOK, code)

	var resp restapi.CreateBufferResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 0, resp.Buffer.Capacity)

	code, _ = do(t, srv, http.MethodPost, "/api/v1/buffers/zero/back", `{"items": [1]}`)
	assert.Equal(t, http.StatusConflict, code)
}
