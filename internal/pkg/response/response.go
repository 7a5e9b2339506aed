// Package response renders the JSON envelope every admin endpoint speaks:
// {"success": true, "data": ...} or {"success": false, "error": {"code",
// "message"}}. Error codes are stable identifiers for the dashboard;
// messages are for humans.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
