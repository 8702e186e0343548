// Package docserver serves the raw documentation files verbatim.
package docserver

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/webasoo/swagger-aggregate/aggregate"
)

// Option customises a Handler.
type Option func(*server)

// WithObserver registers a callback invoked with the status of every response.
func WithObserver(observe func(status int)) Option {
	return func(s *server) { s.observe = observe }
}

// WithLogger sets the logger used for unexpected read failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type server struct {
	fsys    fs.FS
	prefix  string
	observe func(int)
	logger  *slog.Logger
}

// Handler returns an http.Handler mapping <prefix>/<path> to <path> inside fsys.
func Handler(fsys fs.FS, prefix string, opts ...Option) http.Handler {
	s := &server{
		fsys:   fsys,
		prefix: aggregate.NormalizePrefix(prefix),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	s.serve(sw, r)
	if s.observe != nil {
		s.observe(sw.status)
	}
}

func (s *server) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	target, ok := resolveTarget(r.URL.Path, s.prefix)
	if !ok {
		http.NotFound(w, r)
		return
	}

	info, err := fs.Stat(s.fsys, target)
	if err != nil || info.IsDir() {
		if err != nil && !isNotFound(err) {
			s.logger.Warn("stat document failed", "path", target, "error", err)
		}
		http.NotFound(w, r)
		return
	}

	data, err := fs.ReadFile(s.fsys, target)
	if err != nil {
		if isNotFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error("read document failed", "path", target, "error", err)
		http.Error(w, "docserver: document not readable", http.StatusInternalServerError)
		return
	}

	if ctype := contentTypeFor(target); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	http.ServeContent(w, r, path.Base(target), info.ModTime(), bytes.NewReader(data))
}

// resolveTarget strips prefix from the cleaned request path and returns a path valid for fs.FS.
func resolveTarget(raw, prefix string) (string, bool) {
	if raw == "" {
		return "", false
	}
	cleaned := path.Clean("/" + raw)
	if !strings.HasPrefix(cleaned, prefix) {
		return "", false
	}
	target := strings.TrimPrefix(cleaned, prefix)
	if target == "" || !fs.ValidPath(target) {
		return "", false
	}
	return target, true
}

func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid)
}

func contentTypeFor(name string) string {
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		return mime.TypeByExtension(ext)
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
