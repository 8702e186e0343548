package fiberswagger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/webasoo/swagger-aggregate/aggregate"
	"github.com/webasoo/swagger-aggregate/server"
)

// Handler returns a Fiber handler that forwards to the aggregator.
func Handler(agg *server.Aggregator) fiber.Handler {
	return adaptor.HTTPHandler(agg)
}

// Register attaches every aggregator path and its /* subtree to the app. Fiber answers HEAD for
// GET routes.
func Register(app *fiber.App, agg *server.Aggregator) {
	wrapped := Handler(agg)
	for _, p := range agg.Paths() {
		app.Get(p, wrapped)
		app.Get(p+"/*", wrapped)
	}
}

// RegisterDir scans dir for documentation folders and mounts the result.
func RegisterDir(app *fiber.App, dir string, cfg server.Config) (*server.Aggregator, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("fiberswagger: docs root %q: %w", dir, err)
	}
	agg, err := server.New(os.DirFS(dir), cfg)
	if err != nil {
		return nil, fmt.Errorf("fiberswagger: %w", err)
	}
	Register(app, agg)
	return agg, nil
}

// RegisterDefault mounts the docs folder of the enclosing module, falling back to ./docs.
func RegisterDefault(app *fiber.App, cfg server.Config) (*server.Aggregator, error) {
	dir, err := defaultDocsRoot()
	if err != nil {
		return nil, err
	}
	return RegisterDir(app, dir, cfg)
}

func defaultDocsRoot() (string, error) {
	root, err := aggregate.FindModuleRoot(".")
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("fiberswagger: resolve workspace root: %w", err)
		}
	}
	return filepath.Join(root, "docs"), nil
}
