package scalar

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/webasoo/swagger-aggregate/aggregate"
)

const (
	// DefaultPath is where the Scalar viewer is mounted unless told otherwise.
	DefaultPath = "/scalar"

	configFile = "scalar-config.json"
	indexFile  = "index.html"
)

var assetFS = initAssetFS()

func initAssetFS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic("scalar: failed to load embedded assets: " + err.Error())
	}
	return sub
}

// Source is one document offered in the Scalar source picker.
type Source struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`
}

type config struct {
	Sources               []Source `json:"sources"`
	HideTestRequestButton bool     `json:"hideTestRequestButton"`
	HideClientButton      bool     `json:"hideClientButton"`
}

// Handler returns an http.Handler serving the Scalar API reference under DefaultPath.
func Handler(resources []aggregate.Resource) http.Handler {
	h, err := HandlerAt(DefaultPath, resources)
	if err != nil {
		panic(err)
	}
	return h
}

// HandlerAt returns a Scalar handler for requests under base, one source per resource.
func HandlerAt(base string, resources []aggregate.Resource) (http.Handler, error) {
	cfg, err := json.Marshal(config{
		Sources:               Sources(resources),
		HideTestRequestButton: true,
		HideClientButton:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("scalar: encode config: %w", err)
	}
	base = "/" + strings.Trim(base, "/")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path.Clean(r.URL.Path) == base && !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, base+"/", http.StatusMovedPermanently)
			return
		}
		switch target := resolveTarget(r.URL.Path, base); target {
		case "", indexFile:
			if !serveAsset(w, indexFile) {
				http.Error(w, "scalar: index not available", http.StatusInternalServerError)
			}
		case configFile:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(cfg)
		default:
			http.NotFound(w, r)
		}
	}), nil
}

// Sources converts resources into Scalar sources. Titles carry the version so two documents
// from one folder stay distinguishable; slugs are made unique by suffixing a counter.
func Sources(resources []aggregate.Resource) []Source {
	out := make([]Source, 0, len(resources))
	seen := make(map[string]int)
	for _, r := range resources {
		slug := slugify(r.Name + "-" + string(r.Version))
		if n := seen[slug]; n > 0 {
			seen[slug] = n + 1
			slug = fmt.Sprintf("%s-%d", slug, n+1)
		} else {
			seen[slug] = 1
		}
		out = append(out, Source{
			Title: fmt.Sprintf("%s (%s)", r.Name, r.Version),
			Slug:  slug,
			URL:   r.Location,
		})
	}
	return out
}

// Register mounts the Scalar handler under /scalar and /scalar/ on http.DefaultServeMux.
func Register(resources []aggregate.Resource) {
	handler := Handler(resources)
	http.Handle(DefaultPath, handler)
	http.Handle(DefaultPath+"/", handler)
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func resolveTarget(raw, base string) string {
	cleaned := raw
	if idx := strings.Index(cleaned, "?"); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	if cleaned == "" {
		return ""
	}
	cleaned = path.Clean("/" + cleaned)
	if cleaned == base {
		return ""
	}
	cleaned = strings.TrimPrefix(cleaned, base+"/")
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "." {
		return ""
	}
	return cleaned
}

func serveAsset(w http.ResponseWriter, name string) bool {
	data, err := fs.ReadFile(assetFS, name)
	if err != nil {
		return false
	}

	switch path.Ext(name) {
	case ".html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	case ".js":
		w.Header().Set("Content-Type", "application/javascript")
	case ".css":
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
	}

	_, _ = w.Write(data)
	return true
}
