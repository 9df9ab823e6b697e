// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: The path command and the query flags shared with pay.

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/dijkstra"
	"github.com/katalvlaran/vcgpath/graphfile"
)

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path GRAPH",
		Short: "Print the cheapest source→target path without payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, doc, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			format, err := graphfile.ParseFormat(a.v.GetString("format"))
			if err != nil {
				return err
			}
			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()

			opts := []dijkstra.Option{dijkstra.WithContext(ctx)}
			if n := a.v.GetInt("max-expansions"); n > 0 {
				opts = append(opts, dijkstra.WithMaxExpansions(n))
			}
			source, target := a.endpoints(doc)
			p, err := dijkstra.ShortestPath(g, source, target, opts...)
			if err != nil {
				return err
			}

			return graphfile.Encode(cmd.OutOrStdout(), format, graphfile.NewPath(source, target, p))
		},
	}
	addQueryFlags(cmd.Flags())
	addOutputFlag(cmd.Flags())

	return cmd
}

// addQueryFlags registers the endpoint and search-bound flags shared by pay and path.
func addQueryFlags(fs *pflag.FlagSet) {
	fs.String("source", "", "source vertex (default: the document's source)")
	fs.String("target", "", "target vertex (default: the document's target)")
	fs.Int("max-expansions", 0, "bound on vertices finalized per search; 0 is unbounded")
	fs.Duration("timeout", 0, "deadline for the whole computation; 0 disables it")
}

// loadGraph reads a graph document and builds its graph.
func loadGraph(path string) (*core.Graph, *graphfile.Document, error) {
	doc, err := graphfile.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, err
	}

	return g, doc, nil
}

// endpoints resolves --source/--target against the document defaults.
func (a *app) endpoints(doc *graphfile.Document) (string, string) {
	source, target := a.v.GetString("source"), a.v.GetString("target")
	if source == "" {
		source = doc.Source
	}
	if target == "" {
		target = doc.Target
	}

	return source, target
}

// searchContext applies --timeout.
func (a *app) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if d := a.v.GetDuration("timeout"); d > time.Duration(0) {
		return context.WithTimeout(parent, d)
	}

	return context.WithCancel(parent)
}
