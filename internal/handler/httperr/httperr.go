package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the single error body shape: {"error": "...", "message": "..."}.
type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}
	abort(c, err, resp)
}

// AbortWithMessage adds a human-readable message next to the short error text.
func AbortWithMessage(c *gin.Context, status int, err error, msg, message string) {
	if err == nil {
		panic("AbortWithMessage: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Message: message}
	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
