// SPDX-License-Identifier: MIT
//
// File: serve.go
// Role: The serve command: runs the HTTP API.

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcgpath/server"
)

func newServeCmd(a *app) *cobra.Command {
	def := server.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the payment API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := server.Config{
				Addr:           a.v.GetString("addr"),
				RequestTimeout: a.v.GetDuration("request-timeout"),
				MaxExpansions:  a.v.GetInt("max-expansions"),
				MaxBodyBytes:   a.v.GetInt64("max-body-bytes"),
				Concurrency:    a.v.GetInt("concurrency"),
				ServiceName:    "vcgpath",
				ShutdownGrace:  a.v.GetDuration("shutdown-grace"),
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			return server.New(cfg, server.WithLogger(a.logger), server.WithRegistry(reg)).Run(cmd.Context())
		},
	}

	fs := cmd.Flags()
	fs.String("addr", def.Addr, "listen address")
	fs.Duration("request-timeout", def.RequestTimeout, "per-request deadline")
	fs.Int("max-expansions", def.MaxExpansions, "bound on vertices finalized per search")
	fs.Int64("max-body-bytes", def.MaxBodyBytes, "request body limit")
	fs.Int("concurrency", def.Concurrency, "batch worker limit per request")
	fs.Duration("shutdown-grace", def.ShutdownGrace, "graceful shutdown window")

	return cmd
}
