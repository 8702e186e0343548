package aggregate

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"path"
	"strings"
)

// DefaultPrefix is the public URL prefix documents are served under.
const DefaultPrefix = "/docs"

// ScanConfig describes how documentation folders are discovered.
// All fields are optional.
type ScanConfig struct {
	Prefix   string       // public URL prefix for locations; defaults to DefaultPrefix
	Patterns []Pattern    // file names to look for; defaults to DefaultPatterns
	Defaults []Resource   // resources listed ahead of the discovered ones
	Logger   *slog.Logger // defaults to slog.Default()
}

// Scan walks the first level of fsys and returns one resource per <service>/<file> match,
// preceded by cfg.Defaults. A root that cannot be read is reported as an error.
func Scan(fsys fs.FS, cfg ScanConfig) ([]Resource, error) {
	if fsys == nil {
		return nil, fmt.Errorf("aggregate: nil docs filesystem")
	}
	if _, err := fs.ReadDir(fsys, "."); err != nil {
		return nil, fmt.Errorf("aggregate: read docs root: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	prefix := NormalizePrefix(cfg.Prefix)

	var discovered []Resource
	for _, p := range patterns {
		matches, err := fs.Glob(fsys, path.Join("*", p.File))
		if err != nil {
			return nil, fmt.Errorf("aggregate: match %q: %w", p.File, err)
		}
		logger.Info("found documentation files", "file", p.File, "count", len(matches))

		for _, match := range matches {
			info, err := fs.Stat(fsys, match)
			if err != nil {
				return nil, fmt.Errorf("aggregate: stat %s: %w", match, err)
			}
			if info.IsDir() {
				logger.Warn("skipping directory named like a document", "path", match)
				continue
			}
			res, err := newResource(prefix, match, p.Version)
			if err != nil {
				return nil, err
			}
			logger.Debug("creating resource", "path", match, "name", res.Name, "version", res.Version)
			discovered = append(discovered, res)
		}
	}

	return Merge(cfg.Defaults, discovered), nil
}

// Merge returns defaults followed by discovered. Entries are never collapsed and neither input
// is modified.
func Merge(defaults, discovered []Resource) []Resource {
	out := make([]Resource, 0, len(defaults)+len(discovered))
	out = append(out, defaults...)
	return append(out, discovered...)
}

// ServiceName returns the segment between the last two slashes of p, i.e. the folder that
// directly holds the document.
func ServiceName(p string) (string, error) {
	last := strings.LastIndex(p, "/")
	if last < 0 {
		return "", fmt.Errorf("%w: %q has no parent folder", ErrMalformedPath, p)
	}
	prev := strings.LastIndex(p[:last], "/")
	if prev < 0 {
		return "", fmt.Errorf("%w: %q has fewer than two separators", ErrMalformedPath, p)
	}
	name := p[prev+1 : last]
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q has an empty folder name", ErrMalformedPath, p)
	}
	return name, nil
}

// NormalizePrefix returns prefix with exactly one leading and one trailing slash.
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = strings.Trim(DefaultPrefix, "/")
	}
	return "/" + prefix + "/"
}

func newResource(prefix, match string, version Version) (Resource, error) {
	name, err := ServiceName("/" + match)
	if err != nil {
		return Resource{}, err
	}
	return Resource{
		Name:     name,
		Version:  version,
		Location: prefix + url.PathEscape(name) + "/" + path.Base(match),
	}, nil
}
