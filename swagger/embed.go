package swagger

import "embed"

// assets holds the aggregator's index.html. The Swagger UI bundle itself comes from swaggo/files.
//
//go:embed assets/*
var assets embed.FS
