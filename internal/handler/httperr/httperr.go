// Package httperr is the single error body shape of the API. Handlers abort
// through it; the error middleware replays it when nothing was written.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	// Detail carries validation reasons.
	Detail any `json:"detail,omitempty"`
}

type Body struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func New(status int, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  Body{Message: msg, Code: Code(status)},
		Detail: detail,
	}
}

// Code is the machine readable counterpart of an HTTP status.
func Code(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	}
	if status >= http.StatusInternalServerError {
		return "internal"
	}
	return "error"
}

// AbortWithError keeps err on the gin context for the request log while the
// client only sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError needs the underlying error")
	}

	resp := New(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
