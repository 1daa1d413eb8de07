package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/anisan-cli/anitaku/extract"
	"github.com/anisan-cli/anitaku/network"
	"github.com/anisan-cli/anitaku/scraper"
	"github.com/gin-gonic/gin"
)

// Error codes of failed responses.
const (
	ErrCodeFetchFailed  = "FETCH_FAILED"
	ErrCodeTimeout      = "FETCH_TIMEOUT"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorDetail describes why a request failed.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the envelope of every endpoint but health.
type Response struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

func respond(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondError(c *gin.Context, err error) {
	status, code := classify(err)
	_ = c.Error(err)
	c.JSON(status, Response{
		Success: false,
		Error:   &ErrorDetail{Code: code, Message: err.Error()},
	})
}

// classify maps an error to its HTTP status and error code.
func classify(err error) (int, string) {
	var fetchErr *network.FetchError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeTimeout
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway, ErrCodeFetchFailed
	case errors.Is(err, scraper.ErrEmptyKeyword), errors.Is(err, extract.ErrUnknownKind), errors.Is(err, errInvalidInput):
		return http.StatusBadRequest, ErrCodeInvalidInput
	default:
		return http.StatusInternalServerError, ErrCodeInternal
	}
}
