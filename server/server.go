// Package server assembles the aggregator: it scans the documentation root once and routes the
// raw documents, the viewers and the resource listing through a single chi router.
package server

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/lo"

	"github.com/webasoo/swagger-aggregate/aggregate"
	"github.com/webasoo/swagger-aggregate/docserver"
	"github.com/webasoo/swagger-aggregate/metrics"
	"github.com/webasoo/swagger-aggregate/scalar"
	"github.com/webasoo/swagger-aggregate/swagger"
)

const scalarPath = scalar.DefaultPath

// Config describes the assembled aggregator. Zero values fall back to the defaults of the
// individual packages.
type Config struct {
	DocsPrefix string               // public prefix of the raw documents; defaults to /docs
	UIPath     string               // Swagger UI mount point; defaults to /swagger-ui
	SelfDocs   bool                 // publish SelfDocument and list it as the "default" resource
	Version    string               // reported in SelfDocument
	UIOptions  *swagger.UIOptions   // defaults to swagger.DefaultUIOptions()
	Defaults   []aggregate.Resource // listed after the self document and before discovered ones
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
}

func (c Config) docsPrefix() string { return aggregate.NormalizePrefix(c.DocsPrefix) }

func (c Config) uiPath() string {
	p := "/" + strings.Trim(strings.TrimSpace(c.UIPath), "/")
	if p == "/" {
		return swagger.DefaultPath
	}
	return p
}

// SelfResource is the resource pointing at SelfDocument.
var SelfResource = aggregate.Resource{Name: "default", Version: aggregate.OpenAPI3, Location: SelfDocPath}

// Aggregator is the immutable result of startup: the resource list and the handler serving it.
type Aggregator struct {
	resources []aggregate.Resource
	uiOptions swagger.UIOptions
	paths     []string
	handler   http.Handler
}

// New scans docs and builds the HTTP handler. Scan failures are returned unchanged so the
// caller can refuse to start.
func New(docs fs.FS, cfg Config) (*Aggregator, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	uiOptions := swagger.DefaultUIOptions()
	if cfg.UIOptions != nil {
		uiOptions = *cfg.UIOptions
	}

	var defaults []aggregate.Resource
	if cfg.SelfDocs {
		defaults = append(defaults, SelfResource)
	}
	defaults = append(defaults, cfg.Defaults...)

	resources, err := aggregate.Scan(docs, aggregate.ScanConfig{
		Prefix:   cfg.DocsPrefix,
		Defaults: defaults,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	cfg.Metrics.ObserveResources(resources)
	logger.Info("documentation resources registered", "count", len(resources))

	a := &Aggregator{resources: resources, uiOptions: uiOptions}
	a.handler, err = a.routes(docs, cfg, logger)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Resources returns a copy of the aggregated resources in display order.
func (a *Aggregator) Resources() []aggregate.Resource {
	return append([]aggregate.Resource(nil), a.resources...)
}

// Paths returns the base paths the aggregator answers below, for mounting on a host router.
// Operational endpoints (/, /healthz, /metrics) are left to the host.
func (a *Aggregator) Paths() []string {
	return append([]string(nil), a.paths...)
}

// Register mounts the aggregator on mux under each of Paths.
func (a *Aggregator) Register(mux *http.ServeMux) {
	for _, p := range a.paths {
		mux.Handle(p, a)
		mux.Handle(p+"/", a)
	}
}

// ServeHTTP implements http.Handler.
func (a *Aggregator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *Aggregator) routes(docs fs.FS, cfg Config, logger *slog.Logger) (http.Handler, error) {
	uiPath := cfg.uiPath()
	docsBase := strings.TrimSuffix(cfg.docsPrefix(), "/")

	ui, err := swagger.HandlerAt(uiPath, a.resources, a.uiOptions)
	if err != nil {
		return nil, err
	}
	reference, err := scalar.HandlerAt(scalarPath, a.resources)
	if err != nil {
		return nil, err
	}
	listing, err := json.Marshal(resourceViews(a.resources))
	if err != nil {
		return nil, fmt.Errorf("server: encode resources: %w", err)
	}
	uiConfig, err := json.Marshal(a.uiOptions)
	if err != nil {
		return nil, fmt.Errorf("server: encode ui options: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, uiPath+"/", http.StatusFound)
	})

	r.Handle(docsBase+"/*", docserver.Handler(docs, docsBase,
		docserver.WithObserver(cfg.Metrics.ObserveDocumentRequest),
		docserver.WithLogger(logger),
	))

	r.Handle(uiPath, ui)
	r.Handle(uiPath+"/*", ui)
	r.Handle(scalarPath, reference)
	r.Handle(scalarPath+"/*", reference)

	a.paths = []string{docsBase, uiPath, scalarPath, "/swagger-resources"}

	r.Get("/swagger-resources", writeJSON(listing))
	r.Get("/swagger-resources/configuration/ui", writeJSON(uiConfig))

	if cfg.SelfDocs {
		self, err := SelfDocument(cfg).MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("server: encode self document: %w", err)
		}
		r.Get(SelfDocPath, writeJSON(self))
		a.paths = append(a.paths, SelfDocPath)
	}

	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	return r, nil
}

// resourceView is the listing shape Swagger UI front ends expect; url repeats location.
type resourceView struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	SwaggerVersion string `json:"swaggerVersion"`
	Location       string `json:"location"`
}

func resourceViews(resources []aggregate.Resource) []resourceView {
	return lo.Map(resources, func(r aggregate.Resource, _ int) resourceView {
		return resourceView{
			Name:           r.Name,
			URL:            r.Location,
			SwaggerVersion: string(r.Version),
			Location:       r.Location,
		}
	})
}

func writeJSON(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
