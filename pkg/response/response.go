// Package response writes the JSON envelopes every API route returns.
package response

import (
	"errors"
	"net/http"
	"time"

	"sovtoken-payments/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Meta is stamped on every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// Success wraps a command result or listing.
type Success struct {
	Data any `json:"data"`
	Meta
}

// Failure carries an error code from the apperror taxonomy.
type Failure struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Meta
}

// OK writes a 200 envelope around data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data, Meta: meta(c)})
}

// Error writes the envelope for err. Errors outside the taxonomy are
// reported as internal so their text never reaches the caller.
func Error(c *gin.Context, err error) {
	appErr := classify(err)
	c.JSON(appErr.HTTPStatus, Failure{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Meta:      meta(c),
	})
}

// Abort is Error followed by c.Abort, for middleware.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func classify(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.InternalError(err)
}

func meta(c *gin.Context) Meta {
	id := c.GetString(RequestIDKey)
	if id == "" {
		id = uuid.NewString()
	}
	return Meta{RequestID: id, Timestamp: time.Now().UTC().Format(time.RFC3339)}
}
