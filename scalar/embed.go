package scalar

import "embed"

// assets contains the Scalar API Reference bootstrap page.
//
//go:embed assets/*
var assets embed.FS
