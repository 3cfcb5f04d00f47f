package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// APIError is the error body shared by every endpoint: a short error string,
// optional upstream details, and the request trace id.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: GetTraceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIError{
		Error:   message,
		TraceID: GetTraceID(c),
	})
}

// HandleServiceError maps service errors onto the HTTP error convention:
// 4xx/5xx with {error, details?}. Every failure stays scoped to the action
// that triggered it.
func HandleServiceError(c *gin.Context, err error) {
	var upstream *UpstreamError

	switch {
	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidDateKey),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrDateOutsideRange),
		errors.Is(err, ErrEmptyActivityName),
		errors.Is(err, ErrSuggestionIndex):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotConfigured):
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.As(err, &upstream):
		log.Printf("Upstream error: %s status=%d body=%s", upstream.Service, upstream.StatusCode, upstream.Body)
		c.JSON(http.StatusInternalServerError, APIError{
			Error:   upstream.Service + " failed",
			Details: upstream.Body,
			TraceID: GetTraceID(c),
		})
	case errors.Is(err, ErrNoImagesFound):
		RespondError(c, http.StatusInternalServerError, "Failed to fetch image from Unsplash")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
