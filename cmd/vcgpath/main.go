// SPDX-License-Identifier: MIT
//
// File: main.go
// Role: Process entry point with signal-aware context.

// Command vcgpath computes VCG payments for cheapest-path procurement.
//
//	vcgpath pay graph.yaml --source s --target t
//	vcgpath path graph.yaml
//	vcgpath generate --kind grid --rows 4 --cols 4 --seed 7 > grid.yaml
//	vcgpath serve --addr :8080
//
// Flags may also be set in a YAML config file (--config) or through
// VCGPATH_-prefixed environment variables, e.g. VCGPATH_LOG_LEVEL=debug.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
