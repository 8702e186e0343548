package ginswagger

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webasoo/swagger-aggregate/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newDocsRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for service, file := range map[string]string{"orders": "swagger.json", "users": "openapi.json"} {
		dir := filepath.Join(root, service)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(`{"service":"`+service+`"}`), 0o644))
	}
	return root
}

func TestRegisterDirOnGin(t *testing.T) {
	engine := gin.New()
	engine.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	agg, err := RegisterDir(engine, newDocsRoot(t), server.Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.Len(t, agg.Resources(), 2)

	tests := []struct {
		method string
		target string
		want   int
		body   string
	}{
		{method: http.MethodGet, target: "/api/ping", want: http.StatusOK, body: "pong"},
		{method: http.MethodGet, target: "/docs/orders/swagger.json", want: http.StatusOK, body: `{"service":"orders"}`},
		{method: http.MethodGet, target: "/docs/users/openapi.json", want: http.StatusOK, body: `{"service":"users"}`},
		{method: http.MethodHead, target: "/docs/users/openapi.json", want: http.StatusOK},
		{method: http.MethodGet, target: "/docs/unknown/swagger.json", want: http.StatusNotFound},
		{method: http.MethodGet, target: "/swagger-ui/", want: http.StatusOK},
		{method: http.MethodGet, target: "/swagger-resources", want: http.StatusOK},
		{method: http.MethodGet, target: "/swagger-resources/configuration/ui", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.want, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRegisterDirMissingRoot(t *testing.T) {
	_, err := RegisterDir(gin.New(), filepath.Join(t.TempDir(), "absent"), server.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ginswagger")
}
