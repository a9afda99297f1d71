package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse writes the {status, message, data} envelope every endpoint returns.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError writes the error envelope and attaches err to the gin context so
// the request logger reports it.
func JSONError(c *gin.Context, status int, err error, message string) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
