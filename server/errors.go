// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Mapping of library errors onto HTTP status codes and stable error codes.

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/vcgpath/core"
	"github.com/katalvlaran/vcgpath/dijkstra"
	"github.com/katalvlaran/vcgpath/graphfile"
	"github.com/katalvlaran/vcgpath/vcg"
)

// ErrBadRequest marks malformed request bodies.
var ErrBadRequest = errors.New("server: bad request")

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusFor maps library errors onto HTTP status codes and stable codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrVertexNotFound):
		return http.StatusNotFound, "vertex_not_found"
	case errors.Is(err, vcg.ErrNoPath):
		return http.StatusUnprocessableEntity, "no_path"
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, graphfile.ErrBadDocument),
		errors.Is(err, dijkstra.ErrEmptySource),
		errors.Is(err, dijkstra.ErrEmptyTarget):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, dijkstra.ErrExpansionLimit):
		return http.StatusServiceUnavailable, "expansion_limit"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "canceled"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// fail records err on the context and writes the mapped error reply.
func fail(c *gin.Context, err error) {
	status, code := statusFor(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
