package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondError writes the {"error": "..."} body the frontend expects. The
// message must stay generic for 5xx responses; log the real error server-side
// before calling this.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondMessage writes the {"message": "..."} confirmation body used by the
// delete endpoints.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
