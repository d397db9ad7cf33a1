package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStaff gates a route to staff accounts. Must run after AuthRequired.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		AuthRequired()(c)
		if c.IsAborted() {
			return
		}

		if !c.GetBool("is_staff") {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Você não tem permissão para acessar este recurso",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
