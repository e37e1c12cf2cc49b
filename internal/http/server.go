// Package http serves the tenantd HTTP API.
//
// The API exposes the resolved view of a tenant's dashboard state:
//
//	GET /health
//	GET /metrics
//	GET /tenants/:tenant/projects
//	GET /tenants/:tenant/default-index
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/tenantd/internal/config"
	"github.com/fyrsmithlabs/tenantd/internal/dashboard"
	"github.com/fyrsmithlabs/tenantd/internal/pattern"
	"github.com/fyrsmithlabs/tenantd/internal/project"
	"github.com/fyrsmithlabs/tenantd/internal/searchstore"
)

// Server is the tenantd HTTP server.
type Server struct {
	config   *config.Config
	echo     *echo.Echo
	resolver *pattern.Resolver
	logger   *zap.Logger
}

// HealthResponse is the JSON response for the /health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ProjectEntry is one resolved project in a ProjectsResponse.
type ProjectEntry struct {
	Name         string `json:"name"`
	UID          string `json:"uid,omitempty"`
	IndexPattern string `json:"indexPattern"`
}

// ProjectsResponse is the JSON response for the tenant projects endpoint.
type ProjectsResponse struct {
	Tenant   string         `json:"tenant"`
	Projects []ProjectEntry `json:"projects"`
}

// DefaultIndexResponse is the JSON response for the default-index endpoint.
type DefaultIndexResponse struct {
	Tenant       string `json:"tenant"`
	DefaultIndex string `json:"defaultIndex"`
}

// NewServer creates the HTTP server with routes registered.
func NewServer(cfg *config.Config, resolver *pattern.Resolver, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		config:   cfg,
		echo:     e,
		resolver: resolver,
		logger:   logger,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/tenants/:tenant/projects", s.handleProjects)
	s.echo.GET("/tenants/:tenant/default-index", s.handleDefaultIndex)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleProjects(c echo.Context) error {
	tenant := c.Param("tenant")

	index, err := dashboard.IndexForTenant(s.config.Dashboard.IndexPrefix, tenant)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	set, err := s.resolver.Projects(c.Request().Context(), index)
	if err != nil {
		if errors.Is(err, searchstore.ErrIndexNotFound) {
			// Tenant has no dashboard state yet.
			return c.JSON(http.StatusOK, ProjectsResponse{
				Tenant:   tenant,
				Projects: []ProjectEntry{},
			})
		}
		s.logger.Error("resolving tenant projects",
			zap.String("tenant", tenant),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusBadGateway, "search backend error")
	}

	entries := make([]ProjectEntry, 0, len(set))
	for p := range set {
		entries = append(entries, ProjectEntry{
			Name:         p.Name,
			UID:          p.UID,
			IndexPattern: s.resolver.Codec().Encode(p),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].UID < entries[j].UID
	})

	return c.JSON(http.StatusOK, ProjectsResponse{Tenant: tenant, Projects: entries})
}

func (s *Server) handleDefaultIndex(c echo.Context) error {
	tenant := c.Param("tenant")

	index, err := dashboard.IndexForTenant(s.config.Dashboard.IndexPrefix, tenant)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fallback := s.config.Dashboard.DefaultIndex
	if fallback == "" {
		fallback = s.resolver.Codec().Encode(project.EmptyProject)
	}

	value, err := s.resolver.DefaultIndexPattern(c.Request().Context(), index, fallback)
	if err != nil {
		if errors.Is(err, pattern.ErrBadVersion) {
			s.logger.Error("malformed config document version",
				zap.String("tenant", tenant),
				zap.Error(err))
			return echo.NewHTTPError(http.StatusBadGateway, "malformed dashboard config")
		}
		s.logger.Error("resolving default index pattern",
			zap.String("tenant", tenant),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusBadGateway, "search backend error")
	}

	return c.JSON(http.StatusOK, DefaultIndexResponse{Tenant: tenant, DefaultIndex: value})
}

// Echo returns the underlying Echo instance, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start starts the HTTP server and blocks until ctx is cancelled.
//
// Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server start: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			s.config.Server.ShutdownTimeout.Duration(),
		)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return http.ErrServerClosed
	}
}
