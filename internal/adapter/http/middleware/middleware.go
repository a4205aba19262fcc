package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"sovtoken-payments/internal/core/ports"
	"sovtoken-payments/pkg/apperror"
	"sovtoken-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderCommandHandle = "X-Command-Handle"
	HeaderRequestID     = "X-Request-ID"

	// Context keys
	CtxSubmitterDID  = "submitter_did"
	CtxCommandHandle = "command_handle"
	CtxRequestID     = response.RequestIDKey
)

// JWTAuth validates the bearer token and stores the submitter DID it names.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("client_ip", c.ClientIP()).Msg("bearer token rejected")
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxSubmitterDID, claims.SubmitterDID)
		c.Next()
	}
}

// CommandHandle reads the caller's correlation handle. Requests without one
// are served but never replayed from the result cache.
func CommandHandle() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderCommandHandle)
		if raw == "" {
			c.Next()
			return
		}

		handle, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			response.Abort(c, apperror.MalformedConfig(HeaderCommandHandle+" must be a 32-bit integer", err))
			return
		}
		c.Set(CtxCommandHandle, int32(handle))
		c.Next()
	}
}

// Handle returns the command handle set by CommandHandle.
func Handle(c *gin.Context) (int32, bool) {
	v, ok := c.Get(CtxCommandHandle)
	if !ok {
		return 0, false
	}
	h, ok := v.(int32)
	return h, ok
}

// Submitter returns the DID set by JWTAuth.
func Submitter(c *gin.Context) string {
	return c.GetString(CtxSubmitterDID)
}

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": apperror.CodeInternal,
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body. Reads past the limit fail and the
// handler rejects the payload as malformed.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
