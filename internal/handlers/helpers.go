package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/GCF14/JJ-Apartments-Property-Management-System/internal/errors"
)

// dateLayout is the wire format of expense dates.
const dateLayout = "2006-01-02"

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody under the "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// getUserID extracts the authenticated user ID from the Gin context. It is
// zero when authentication is disabled.
func getUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid non-negative integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, strconv.IntSize)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseDate parses an optional YYYY-MM-DD value; empty input yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "dates must use the YYYY-MM-DD format")
	}
	return &d, nil
}

// respondWithError attaches err to the context and aborts the chain.
// middleware.ErrorHandler renders it as an ErrorResponse.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
