package swagger

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	swaggerFiles "github.com/swaggo/files/v2"

	"github.com/webasoo/swagger-aggregate/aggregate"
)

const (
	// DefaultPath is where the viewer is mounted unless told otherwise.
	DefaultPath = "/swagger-ui"

	configFile = "swagger-config.json"
	indexFile  = "index.html"
)

var (
	assetFS  = initAssetFS()
	bundleFS = initBundleFS()
)

func initAssetFS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic("swagger: failed to load embedded assets: " + err.Error())
	}
	return sub
}

func initBundleFS() fs.FS {
	var bundle fs.FS = swaggerFiles.FS
	if _, err := fs.Stat(bundle, "swagger-ui-bundle.js"); err == nil {
		return bundle
	}
	if sub, err := fs.Sub(bundle, "dist"); err == nil {
		return sub
	}
	return bundle
}

// SpecURL is one entry of the viewer's definition selector.
type SpecURL struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type uiConfig struct {
	UIOptions
	URLs []SpecURL `json:"urls"`
}

// Handler returns an http.Handler serving Swagger UI under DefaultPath for the given resources.
func Handler(resources []aggregate.Resource, opts UIOptions) http.Handler {
	h, err := HandlerAt(DefaultPath, resources, opts)
	if err != nil {
		panic(err)
	}
	return h
}

// HandlerAt returns a Swagger UI handler for requests under base. The resource list and options
// are captured at construction.
func HandlerAt(base string, resources []aggregate.Resource, opts UIOptions) (http.Handler, error) {
	config, err := json.Marshal(uiConfig{UIOptions: opts.clone(), URLs: SpecURLs(resources)})
	if err != nil {
		return nil, fmt.Errorf("swagger: encode ui config: %w", err)
	}
	base = "/" + strings.Trim(base, "/")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if path.Clean(r.URL.Path) == base && !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, base+"/", http.StatusMovedPermanently)
			return
		}

		switch target := resolveTarget(r.URL.Path, base); target {
		case "", indexFile:
			if !serveAsset(w, assetFS, indexFile) {
				http.Error(w, "swagger: index not available", http.StatusInternalServerError)
			}
		case configFile:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(config)
		default:
			if serveAsset(w, assetFS, target) || serveAsset(w, bundleFS, target) {
				return
			}
			http.NotFound(w, r)
		}
	}), nil
}

// SpecURLs converts resources into the viewer's url list, keeping order and duplicates.
func SpecURLs(resources []aggregate.Resource) []SpecURL {
	urls := make([]SpecURL, 0, len(resources))
	for _, r := range resources {
		urls = append(urls, SpecURL{URL: r.Location, Name: r.Name})
	}
	return urls
}

// Register adds handlers under DefaultPath on http.DefaultServeMux.
func Register(resources []aggregate.Resource, opts UIOptions) {
	handler := Handler(resources, opts)
	http.Handle(DefaultPath, handler)
	http.Handle(DefaultPath+"/", handler)
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

func serveAsset(w http.ResponseWriter, fsys fs.FS, name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return false
	}

	if ctype := contentTypeFor(name); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	_, _ = w.Write(data)
	return true
}

func contentTypeFor(name string) string {
	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript"
	case ".png":
		return "image/png"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		return mime.TypeByExtension(ext)
	}
}
