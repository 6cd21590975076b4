package response

import (
	"log"
	"net/http"

	"anoa.com/ramadhanpitstop/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": "Terjadi kesalahan pada server. Silakan coba lagi."})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
