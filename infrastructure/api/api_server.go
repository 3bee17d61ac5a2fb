// Package api serves the almanac HTTP API and the streamable MCP endpoint.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"github.com/helixml/almanac"
	apimiddleware "github.com/helixml/almanac/infrastructure/api/middleware"
	v1 "github.com/helixml/almanac/infrastructure/api/v1"
	mcpinternal "github.com/helixml/almanac/internal/mcp"
)

// requestTimeout bounds the JSON API routes.
const requestTimeout = 60 * time.Second

// APIServer provides an HTTP API backed by an almanac Client.
type APIServer struct {
	client       *almanac.Client
	version      string
	server       *Server
	router       chi.Router
	routerCalled bool
	logger       *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given Client.
func NewAPIServer(client *almanac.Client, version string) *APIServer {
	return &APIServer{
		client:  client,
		version: version,
		logger:  client.Logger(),
	}
}

// Router returns the chi router for customization before starting.
// Call this first, add middleware with router.Use(), then call MountRoutes().
func (a *APIServer) Router() chi.Router {
	if a.router != nil {
		return a.router
	}

	a.router = chi.NewRouter()
	a.routerCalled = true
	return a.router
}

// MountRoutes wires up all routes on the router.
func (a *APIServer) MountRoutes() {
	if a.router == nil {
		a.Router()
	}
	a.mountRoutes(a.router)
}

func (a *APIServer) mountRoutes(router chi.Router) {
	c := a.client

	router.Get("/health", a.health)
	router.Get("/healthz", a.health)
	router.Get("/", a.info)

	solutionsRouter := v1.NewSolutionsRouter(c.Runner, a.logger)
	almanacRouter := v1.NewAlmanacRouter(c.Almanac, a.logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(requestTimeout))
		r.Mount("/solutions", solutionsRouter.Routes())
		r.Mount("/almanac", almanacRouter.Routes())
	})

	// No timeout: the streamable transport holds its own session state in
	// response headers.
	mcpSrv := mcpinternal.NewServer(c.Runner, c.Almanac, a.version, a.logger)
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
}

type healthResponse struct {
	Status string `json:"status"`
}

type infoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Cached  bool   `json:"cached"`
}

func (a *APIServer) health(w http.ResponseWriter, _ *http.Request) {
	apimiddleware.WriteJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

func (a *APIServer) info(w http.ResponseWriter, _ *http.Request) {
	apimiddleware.WriteJSON(w, http.StatusOK, infoResponse{
		Name:    "almanac",
		Version: a.version,
		Cached:  a.client.Cached(),
	})
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	srv := NewServer(addr, a.logger)
	a.server = &srv

	if a.routerCalled && a.router != nil {
		srv.Router().Mount("/", a.router)
	} else {
		a.mountRoutes(srv.Router())
	}

	return srv.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the routes as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.Router()
		a.MountRoutes()
	}
	return a.router
}
