package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the payload as-is. The ticket surface speaks flat JSON:
// created ids as {"id": N}, fetched tickets as the full ticket object.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// BadRequest reports any domain failure (validation, not found,
// identity mismatch) as {"error": <message>} with status 400.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// TooManyRequests reports a rate-limited request.
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
}

// InternalError reports a fault in the service itself, never caller input.
func InternalError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
}
