package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
	"github.com/jsamuelsen/quotekeeper/internal/platform/logging"
)

const (
	// ContextKeyTraceID is the gin context key consulted by GetTraceID.
	ContextKeyTraceID = "trace_id"

	headerRequestID = "X-Request-ID"
)

// MapError maps an error to an HTTP status code and error envelope.
// Unknown errors become 500 with a generic message.
func MapError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	var code string

	switch {
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		)
	case errors.Is(err, ErrBinding):
		code = ErrorCodeBadRequest
	case domain.IsParse(err):
		code = ErrorCodeParse
	case domain.IsNotFound(err):
		code = ErrorCodeNotFound
	case domain.IsRemote(err):
		code = ErrorCodeRemote
	case domain.IsUnavailable(err):
		code = ErrorCodeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = ErrorCodeTimeout
	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, err.Error())
}

// HandleError writes the error envelope for err, with the trace ID when the
// request is traced. Internal errors are logged with full details.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithErrorCode aborts the handler chain with an envelope for code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	resp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))

	if c.Writer.Written() {
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(HTTPStatusFromCode(code), resp)
}

// GetTraceID returns the identifier a caller can quote when reporting an
// error: the OpenTelemetry trace ID when the request is traced, else a
// "trace_id" value set on the gin context, else the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	if v, ok := c.Get(ContextKeyTraceID); ok {
		id, _ := v.(string)
		return id
	}

	return c.GetHeader(headerRequestID)
}
