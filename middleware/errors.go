package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/4GeeksAcademy/Ecommerce-Project/models"
	"github.com/gin-gonic/gin"
)

// Errors turns the last error a handler attached with c.Error into a JSON
// response, unless the handler already wrote one.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.JSON(status, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConstraintViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
