package chiswagger

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/webasoo/swagger-aggregate/server"
)

// Handler exposes the underlying net/http handler for advanced routing setups.
func Handler(agg *server.Aggregator) http.Handler {
	return agg
}

// Register wires every aggregator path, and everything below it, into the chi router.
func Register(router chi.Router, agg *server.Aggregator) {
	handler := Handler(agg)
	for _, p := range agg.Paths() {
		router.Handle(p, handler)
		router.Handle(p+"/*", handler)
	}
}

// RegisterDir scans dir for documentation folders and mounts the result.
func RegisterDir(router chi.Router, dir string, cfg server.Config) (*server.Aggregator, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("chiswagger: docs root %q: %w", dir, err)
	}
	agg, err := server.New(os.DirFS(dir), cfg)
	if err != nil {
		return nil, fmt.Errorf("chiswagger: %w", err)
	}
	Register(router, agg)
	return agg, nil
}
