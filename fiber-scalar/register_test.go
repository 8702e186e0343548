package fiberscalar

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webasoo/swagger-aggregate/aggregate"
	"github.com/webasoo/swagger-aggregate/scalar"
)

func TestRegisterOnFiber(t *testing.T) {
	app := fiber.New()
	Register(app, []aggregate.Resource{
		{Name: "orders", Version: aggregate.Swagger2, Location: "/docs/orders/swagger.json"},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/scalar/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/scalar/scalar-config.json", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var cfg struct {
		Sources []scalar.Source `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(body, &cfg))
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "/docs/orders/swagger.json", cfg.Sources[0].URL)
}
