package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masumvai/proytdl/internal/streams"
	"github.com/masumvai/proytdl/internal/ytid"
)

// errJSON writes the uniform error shape used by every endpoint.
func errJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// statusFor maps the error taxonomy onto HTTP statuses: resolver failures are
// client errors, upstream failures are gateway errors, the rest are internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ytid.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, streams.ErrUnavailable),
		errors.Is(err, streams.ErrUpstreamUnavailable),
		errors.Is(err, streams.ErrNoPlayableFormats):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// upstreamError surfaces upstream failures with their detail and hides
// anything unexpected behind a generic message.
func (s *Server) upstreamError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Warnf("unexpected failure: %v", err)
		errJSON(c, status, "internal server error")
		return
	}
	errJSON(c, status, err.Error())
}
