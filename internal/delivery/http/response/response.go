package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure shape the frontend expects on every error.
type ErrorBody struct {
	Message string `json:"message"`
}

// JSON sends a success payload as-is. Records and record arrays go over the
// wire unwrapped, matching the frontend contract.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends a failure response as {"message": ...}.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Message: message})
}
