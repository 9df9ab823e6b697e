// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Server configuration, defaults and functional options.

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/vcgpath/vcg"
)

// Config holds listener and per-request limits.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// RequestTimeout bounds each computation. Zero disables the deadline.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxExpansions bounds every shortest-path search. Zero means unbounded.
	MaxExpansions int `yaml:"max_expansions"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// Concurrency bounds batch fan-out per request.
	Concurrency int `yaml:"concurrency"`

	// ServiceName labels trace spans produced by the HTTP middleware.
	ServiceName string `yaml:"service_name"`

	// ShutdownGrace is how long Run waits for in-flight requests.
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// DefaultConfig returns the settings used by `vcgpath serve`.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		RequestTimeout: 10 * time.Second,
		MaxExpansions:  1_000_000,
		MaxBodyBytes:   8 << 20,
		Concurrency:    4,
		ServiceName:    "vcgpath",
		ShutdownGrace:  5 * time.Second,
	}
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the request and calculator logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry sets the registry that receives the server's collectors and
// backs GET /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithCalculatorOptions appends options applied to every calculator the
// server builds.
func WithCalculatorOptions(opts ...vcg.Option) Option {
	return func(s *Server) {
		s.calcOpts = append(s.calcOpts, opts...)
	}
}
