// SPDX-License-Identifier: MIT
//
// File: handlers.go
// Role: Request/response types and the payment, batch and path handlers.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/dijkstra"
	"github.com/katalvlaran/vcgpath/graphfile"
	"github.com/katalvlaran/vcgpath/vcg"
)

// QueryRequest carries a graph and one source→target pair. Empty Source or
// Target fall back to the document's own defaults.
type QueryRequest struct {
	Graph         graphfile.Document `json:"graph"`
	Source        string             `json:"source,omitempty"`
	Target        string             `json:"target,omitempty"`
	CanonicalKeys bool               `json:"canonical_keys,omitempty"`
}

// BatchRequest carries a graph and many queries.
type BatchRequest struct {
	Graph         graphfile.Document `json:"graph"`
	Queries       []vcg.Query        `json:"queries"`
	CanonicalKeys bool               `json:"canonical_keys,omitempty"`
}

// BatchItem is one entry of a BatchResponse: a result or an error.
type BatchItem struct {
	Source string               `json:"source"`
	Target string               `json:"target"`
	Result *graphfile.ResultDoc `json:"result,omitempty"`
	Error  *ErrorResponse       `json:"error,omitempty"`
}

// BatchResponse lists outcomes in query order.
type BatchResponse struct {
	Results []BatchItem `json:"results"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindStrict decodes the JSON body into v, rejecting unknown keys the way
// graphfile.Decode does for YAML.
func bindStrict(c *gin.Context, v any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	return nil
}

// decode binds a QueryRequest and builds its graph.
func decode(c *gin.Context) (*QueryRequest, *core.Graph, error) {
	var req QueryRequest
	if err := bindStrict(c, &req); err != nil {
		return nil, nil, err
	}
	if req.Source == "" {
		req.Source = req.Graph.Source
	}
	if req.Target == "" {
		req.Target = req.Graph.Target
	}
	g, err := req.Graph.Graph()
	if err != nil {
		return nil, nil, err
	}

	return &req, g, nil
}

func (s *Server) handlePayments(c *gin.Context) {
	req, g, err := decode(c)
	if err != nil {
		fail(c, err)
		return
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()

	res, err := s.calculator(req.CanonicalKeys).ComputePayments(ctx, g, req.Source, req.Target)
	if err != nil {
		fail(c, err)
		return
	}
	doc, err := graphfile.NewResult(g, res)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleBatch(c *gin.Context) {
	var req BatchRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}
	if len(req.Queries) == 0 {
		fail(c, fmt.Errorf("%w: no queries", ErrBadRequest))
		return
	}
	g, err := req.Graph.Graph()
	if err != nil {
		fail(c, err)
		return
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()

	out, err := s.calculator(req.CanonicalKeys).ComputeBatch(ctx, g, req.Queries)
	if err != nil {
		fail(c, err)
		return
	}

	resp := BatchResponse{Results: make([]BatchItem, 0, len(out))}
	for _, r := range out {
		item := BatchItem{Source: r.Query.Source, Target: r.Query.Target}
		if r.Err != nil {
			_, code := statusFor(r.Err)
			item.Error = &ErrorResponse{Error: r.Err.Error(), Code: code}
		} else if item.Result, err = graphfile.NewResult(g, r.Result); err != nil {
			fail(c, err)
			return
		}
		resp.Results = append(resp.Results, item)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePaths(c *gin.Context) {
	req, g, err := decode(c)
	if err != nil {
		fail(c, err)
		return
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()

	opts := []dijkstra.Option{dijkstra.WithContext(ctx)}
	if s.cfg.MaxExpansions > 0 {
		opts = append(opts, dijkstra.WithMaxExpansions(s.cfg.MaxExpansions))
	}
	p, err := dijkstra.ShortestPath(g, req.Source, req.Target, opts...)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, graphfile.NewPath(req.Source, req.Target, p))
}
