package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diarioweb/diario-backend/config"
	"github.com/diarioweb/diario-backend/models"
	"github.com/diarioweb/diario-backend/utils"
)

// LoginPath is where anonymous callers of protected routes are sent,
// carrying the original path in the "next" parameter.
const LoginPath = "/accounts/login/"

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.Path)
	c.Abort()
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	// API clients may send the token as a Bearer header instead
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// AuthRequired resolves the session identity and redirects anonymous
// callers to the login page with a continuation parameter.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			redirectToLogin(c)
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		// Sessão só vale enquanto a conta existir e estiver ativa
		var user models.User
		if err := config.DB.Select("id", "username", "is_active", "is_staff", "is_superuser").
			First(&user, "id = ?", claims.UserID).Error; err != nil {
			redirectToLogin(c)
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Conta desativada"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", user.Username)
		c.Set("is_staff", user.CanModerate())
		c.Next()
	}
}

// OptionalAuth resolves the identity when a valid session is present and
// lets anonymous callers through.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("is_staff", claims.IsStaff)
		c.Next()
	}
}
