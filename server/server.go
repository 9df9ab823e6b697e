// SPDX-License-Identifier: MIT
//
// File: server.go
// Role: Gin engine assembly, middleware, routes and graceful shutdown.

package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/katalvlaran/vcgpath/dijkstra"
	"github.com/katalvlaran/vcgpath/vcg"
)

// Server is the HTTP front end. Build it with New.
type Server struct {
	cfg      Config
	logger   *zap.Logger
	registry *prometheus.Registry
	calcOpts []vcg.Option
	metrics  *vcg.Metrics
	requests *prometheus.CounterVec
	router   *gin.Engine
}

// New wires routes, middleware and collectors.
func New(cfg Config, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   zap.NewNop(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.ServiceName == "" {
		s.cfg.ServiceName = "vcgpath"
	}

	s.metrics = vcg.NewMetrics(s.registry)
	s.requests = promauto.With(s.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "vcgpath",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code",
	}, []string{"route", "code"})

	s.router = gin.New()
	s.router.Use(gin.Recovery(), otelgin.Middleware(s.cfg.ServiceName), s.observe())
	if s.cfg.MaxBodyBytes > 0 {
		s.router.Use(s.limitBody())
	}

	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	v1 := s.router.Group("/v1")
	v1.POST("/payments", s.handlePayments)
	v1.POST("/payments/batch", s.handleBatch)
	v1.POST("/paths", s.handlePaths)

	return s
}

// Router returns the configured engine, mainly for httptest.
func (s *Server) Router() *gin.Engine { return s.router }

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http_listen", zap.String("addr", s.cfg.Addr))
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

	grace := s.cfg.ShutdownGrace
	if grace <= 0 {
		grace = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.logger.Info("http_shutdown", zap.Duration("grace", grace))

	return srv.Shutdown(shutdownCtx)
}

// calculator builds a per-request calculator; canonical flips key orientation.
func (s *Server) calculator(canonical bool) *vcg.Calculator {
	opts := []vcg.Option{
		vcg.WithLogger(s.logger),
		vcg.WithMetrics(s.metrics),
		vcg.WithConcurrency(s.cfg.Concurrency),
	}
	if s.cfg.MaxExpansions > 0 {
		opts = append(opts, vcg.WithSearchOptions(dijkstra.WithMaxExpansions(s.cfg.MaxExpansions)))
	}
	opts = append(opts, s.calcOpts...)
	if canonical {
		opts = append(opts, vcg.WithCanonicalKeys())
	}

	return vcg.New(opts...)
}

// requestContext applies the configured deadline to the request context.
func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.cfg.RequestTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	}

	return context.WithCancel(c.Request.Context())
}

// observe logs each request and counts it by route template.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		s.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}
		if status >= http.StatusInternalServerError {
			s.logger.Warn("http_request", fields...)
			return
		}
		s.logger.Debug("http_request", fields...)
	}
}

func (s *Server) limitBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)
		c.Next()
	}
}
