package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurant-analytics/internal/params"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeUnavailable  = "UNAVAILABLE"
)

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code" example:"VALIDATION_ERROR"`
	Message string            `json:"message" example:"invalid parameters"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Abort(c *gin.Context, status int, code, msg string, fields map[string]string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: msg, Fields: fields}})
}

func NotFound(c *gin.Context, msg string) {
	Abort(c, http.StatusNotFound, CodeNotFound, msg, nil)
}

// Fail writes err as a validation error when it is one; anything else is
// logged and reported as a generic 500.
func Fail(c *gin.Context, err error) {
	var verr *params.ValidationError
	if errors.As(err, &verr) {
		Abort(c, http.StatusUnprocessableEntity, CodeValidation, "invalid parameters", verr.Fields)
		return
	}
	Log(c).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	Abort(c, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
}
