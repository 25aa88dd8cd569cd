package utils

import "github.com/gin-gonic/gin"

// JSONError writes the API's error shape. Consumers only look at the
// status code and the "error" string.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
