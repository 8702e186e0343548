package ginswagger

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/webasoo/swagger-aggregate/server"
)

// Handler adapts the aggregator to Gin.
func Handler(agg *server.Aggregator) gin.HandlerFunc {
	return gin.WrapH(agg)
}

// Register attaches GET and HEAD handlers for every aggregator path and its /*any subtree.
func Register(router gin.IRoutes, agg *server.Aggregator) {
	handler := Handler(agg)
	for _, p := range agg.Paths() {
		router.GET(p, handler)
		router.HEAD(p, handler)
		router.GET(p+"/*any", handler)
		router.HEAD(p+"/*any", handler)
	}
}

// RegisterDir scans dir for documentation folders and mounts the result on a Gin router.
func RegisterDir(router gin.IRoutes, dir string, cfg server.Config) (*server.Aggregator, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("ginswagger: docs root %q: %w", dir, err)
	}
	agg, err := server.New(os.DirFS(dir), cfg)
	if err != nil {
		return nil, fmt.Errorf("ginswagger: %w", err)
	}
	Register(router, agg)
	return agg, nil
}
