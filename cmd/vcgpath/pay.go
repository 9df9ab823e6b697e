// SPDX-License-Identifier: MIT
//
// File: pay.go
// Role: The pay command: single and batch payment computation.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/dijkstra"
	"github.com/katalvlaran/vcgpath/graphfile"
	"github.com/katalvlaran/vcgpath/vcg"
)

func newPayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay GRAPH",
		Short: "Compute the cheapest path and the VCG payment of each of its edges",
		Long: `Reads a YAML or JSON graph document ("-" for stdin) and prints the winning
path, its cost and what each path edge is paid. An edge whose removal
disconnects source from target is paid +Inf.

With --pair the command prices several source:target pairs concurrently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPay(cmd, args[0])
		},
	}

	fs := cmd.Flags()
	addQueryFlags(fs)
	addOutputFlag(fs)
	fs.Bool("canonical-keys", false, "key undirected payments by (min, max) endpoint instead of traversal order")
	fs.Bool("private-copy", false, "compute on a clone of the graph")
	fs.StringSlice("pair", nil, "source:target pair to price; repeatable, enables batch mode")
	fs.Int("concurrency", 4, "batch mode worker limit")
	fs.Duration("slow-threshold", 0, "warn about computations slower than this")

	return cmd
}

func (a *app) runPay(cmd *cobra.Command, path string) error {
	g, doc, err := loadGraph(path)
	if err != nil {
		return err
	}
	format, err := graphfile.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return err
	}
	ctx, cancel := a.searchContext(cmd.Context())
	defer cancel()

	opts := []vcg.Option{
		vcg.WithLogger(a.logger),
		vcg.WithConcurrency(a.v.GetInt("concurrency")),
		vcg.WithSlowThreshold(a.v.GetDuration("slow-threshold")),
	}
	if n := a.v.GetInt("max-expansions"); n > 0 {
		opts = append(opts, vcg.WithSearchOptions(dijkstra.WithMaxExpansions(n)))
	}
	if a.v.GetBool("canonical-keys") {
		opts = append(opts, vcg.WithCanonicalKeys())
	}
	if a.v.GetBool("private-copy") {
		opts = append(opts, vcg.WithPrivateCopy())
	}
	calc := vcg.New(opts...)

	if pairs := a.v.GetStringSlice("pair"); len(pairs) > 0 {
		return a.runBatch(ctx, cmd, calc, g, pairs, format)
	}

	source, target := a.endpoints(doc)
	res, err := calc.ComputePayments(ctx, g, source, target)
	if err != nil {
		return err
	}
	out, err := graphfile.NewResult(g, res)
	if err != nil {
		return err
	}

	return graphfile.Encode(cmd.OutOrStdout(), format, out)
}

// batchOutput is the structured form of a batch run.
type batchOutput struct {
	Results []batchEntry `json:"results" yaml:"results"`
}

type batchEntry struct {
	Source string               `json:"source" yaml:"source"`
	Target string               `json:"target" yaml:"target"`
	Result *graphfile.ResultDoc `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string               `json:"error,omitempty" yaml:"error,omitempty"`
}

func (b *batchOutput) String() string {
	var sb strings.Builder
	for i, e := range b.Results {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "== %s → %s\n", e.Source, e.Target)
		if e.Error != "" {
			fmt.Fprintf(&sb, "error: %s\n", e.Error)
			continue
		}
		sb.WriteString(e.Result.String())
	}

	return sb.String()
}

func (a *app) runBatch(ctx context.Context, cmd *cobra.Command, calc *vcg.Calculator, g *core.Graph, pairs []string, format graphfile.Format) error {
	queries := make([]vcg.Query, 0, len(pairs))
	for _, p := range pairs {
		s, t, ok := strings.Cut(p, ":")
		if !ok || s == "" || t == "" {
			return fmt.Errorf("pair %q: want source:target", p)
		}
		queries = append(queries, vcg.Query{Source: s, Target: t})
	}

	results, err := calc.ComputeBatch(ctx, g, queries)
	if err != nil {
		return err
	}

	out := &batchOutput{Results: make([]batchEntry, 0, len(results))}
	for _, r := range results {
		e := batchEntry{Source: r.Query.Source, Target: r.Query.Target}
		if r.Err != nil {
			e.Error = r.Err.Error()
		} else if e.Result, err = graphfile.NewResult(g, r.Result); err != nil {
			return err
		}
		out.Results = append(out.Results, e)
	}

	return graphfile.Encode(cmd.OutOrStdout(), format, out)
}
