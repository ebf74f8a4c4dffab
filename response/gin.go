package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/servicekit/errors"
)

// Write sends a Response on a gin context: headers first, then the entity
// as JSON, or a bare status when there is no entity.
func Write(c *gin.Context, r *Response) {
	for name, values := range r.headers {
		for _, v := range values {
			c.Writer.Header().Add(name, v)
		}
	}
	if r.HasEntity() {
		c.JSON(r.StatusCode(), r.Entity())
		return
	}
	c.Status(r.StatusCode())
}

// WriteError inspects err: if it is an *errors.AppError the status and
// structured body are derived automatically; otherwise a generic 500 is sent.
func WriteError(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, errors.Internal(err).ToResponse())
}
