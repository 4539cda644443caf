// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the book finder over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/findthatbook/internal/finder"
	"github.com/pdiddy/findthatbook/pkg/types"
)

const (
	defaultAddr            = ":8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// BookFinder runs one search request.
type BookFinder interface {
	Find(ctx context.Context, req finder.Request) (*finder.Response, error)
}

// Server is the HTTP boundary.
type Server struct {
	cfg    types.ServerConfig
	finder BookFinder
	router *gin.Engine
	log    *slog.Logger
}

// New builds the router for f. logger may be nil.
func New(cfg types.ServerConfig, f BookFinder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	s := &Server{
		cfg:    cfg,
		finder: f,
		router: gin.New(),
		log:    logger.With("component", "server"),
	}
	s.router.Use(gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.Use(accessLogMiddleware(s.log))
	s.router.Use(timeoutMiddleware(cfg.RequestTimeout))
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	books := s.router.Group("/api/books")
	{
		books.POST("/search", s.search)
		books.GET("/health", s.health)
	}
	s.router.NoRoute(func(c *gin.Context) {
		writeProblem(c, http.StatusNotFound, "Not Found", "No route for "+c.Request.URL.Path, "NOT_FOUND", nil)
	})
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
