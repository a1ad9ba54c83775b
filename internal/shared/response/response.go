package response

import (
	"dayflow/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

// The success shapes mirror what the web client already consumes: lists come
// back as bare arrays, writes return {ok:true} or {id}. Only errors are
// wrapped in an envelope.

// JSON writes a payload as-is.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// OK writes the {ok:true} acknowledgement used by write endpoints.
func OK(c *gin.Context, status int) {
	c.JSON(status, gin.H{"ok": true})
}

// ID writes the {id} body returned by create endpoints.
func ID(c *gin.Context, status int, id string) {
	c.JSON(status, gin.H{"id": id})
}

// Error writes the error envelope. When the context middleware stamped a
// request ID it is echoed back so clients can quote it in reports.
func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	body := gin.H{
		"code":    errorCode,
		"message": message,
		"details": details,
	}
	if c.Request != nil {
		if rid := contextutil.GetRequestID(c.Request.Context()); rid != "" {
			body["requestId"] = rid
		}
	}
	c.JSON(status, gin.H{
		"ok":    false,
		"error": body,
	})
}
