package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/trendplanner/common"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var apiErr common.APIError
		if errors.As(err, &apiErr) {
			response := gin.H{"error": apiErr.Message}
			if apiErr.Code != "" {
				response["code"] = apiErr.Code
			}
			if apiErr.Fields != nil {
				response["fields"] = apiErr.Fields
			}
			c.JSON(apiErr.Status, response)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
