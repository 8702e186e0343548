package docserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ordersSpec = []byte(`{"swagger":"2.0","info":{"title":"orders","version":"1"}}`)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"orders/swagger.json": {Data: ordersSpec},
		"users/openapi.yaml":  {Data: []byte("openapi: 3.0.3\n")},
		"users/notes.txt":     {Data: []byte("plain")},
	}
}

func performRequest(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServesDocumentVerbatim(t *testing.T) {
	h := Handler(testFS(), "/docs")

	rec := performRequest(t, h, http.MethodGet, "/docs/orders/swagger.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ordersSpec, rec.Body.Bytes())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestContentTypes(t *testing.T) {
	h := Handler(testFS(), "/docs")

	rec := performRequest(t, h, http.MethodGet, "/docs/users/openapi.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

	rec = performRequest(t, h, http.MethodGet, "/docs/users/notes.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestNotFound(t *testing.T) {
	h := Handler(testFS(), "/docs")

	for _, target := range []string{
		"/docs/unknown/swagger.json",
		"/docs/orders",
		"/docs/",
		"/docs",
		"/other/orders/swagger.json",
		"/docs/../orders/swagger.json",
		"/docs/orders/../../etc/passwd",
	} {
		t.Run(target, func(t *testing.T) {
			rec := performRequest(t, h, http.MethodGet, target)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestHead(t *testing.T) {
	h := Handler(testFS(), "/docs")

	rec := performRequest(t, h, http.MethodHead, "/docs/orders/swagger.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestMethodNotAllowed(t *testing.T) {
	h := Handler(testFS(), "/docs")

	rec := performRequest(t, h, http.MethodPost, "/docs/orders/swagger.json")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestObserverSeesStatus(t *testing.T) {
	var seen []int
	h := Handler(testFS(), "/docs", WithObserver(func(status int) { seen = append(seen, status) }))

	performRequest(t, h, http.MethodGet, "/docs/orders/swagger.json")
	performRequest(t, h, http.MethodGet, "/docs/missing/swagger.json")

	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, seen)
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "/docs/orders/swagger.json", want: "orders/swagger.json", ok: true},
		{raw: "/docs//orders//swagger.json", want: "orders/swagger.json", ok: true},
		{raw: "/docs/./orders/swagger.json", want: "orders/swagger.json", ok: true},
		{raw: "/docs", ok: false},
		{raw: "/docsx/orders/swagger.json", ok: false},
		{raw: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := resolveTarget(tt.raw, "/docs/")
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
