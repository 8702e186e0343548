package aggregate

import "errors"

// Version identifies the specification format of a discovered document.
type Version string

const (
	// Swagger2 is assigned to swagger.json documents.
	Swagger2 Version = "2.0"
	// OpenAPI3 is assigned to openapi.json documents.
	OpenAPI3 Version = "3.0"
)

// Resource points the documentation UI at one document.
type Resource struct {
	Name     string  `json:"name"`
	Version  Version `json:"swaggerVersion"`
	Location string  `json:"location"`
}

// Pattern binds a well-known file name to the version it implies.
type Pattern struct {
	File    string
	Version Version
}

// DefaultPatterns lists the conventional file names in scan order.
var DefaultPatterns = []Pattern{
	{File: "swagger.json", Version: Swagger2},
	{File: "openapi.json", Version: OpenAPI3},
}

// ErrMalformedPath is returned when a service name cannot be derived from a document path.
var ErrMalformedPath = errors.New("aggregate: malformed document path")
