package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diarioweb/diario-backend/controllers"
	"github.com/diarioweb/diario-backend/middleware"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Diário"})
	})
	r.GET("/health", controllers.HealthCheck)

	r.GET("/topicos/", controllers.GetTopics)

	r.GET("/criar-conta/", controllers.RegisterForm)
	r.POST("/criar-conta/", controllers.Register)

	accounts := r.Group("/accounts")
	{
		accounts.GET("/login/", controllers.LoginForm)
		accounts.POST("/login/", controllers.Login)
		accounts.POST("/logout/", controllers.Logout)
		accounts.POST("/alterar-senha", middleware.AuthRequired(), controllers.ChangePassword)
		accounts.GET("/apagar-conta", middleware.AuthRequired(), controllers.DeleteAccountConfirm)
		accounts.POST("/apagar-conta", middleware.AuthRequired(), controllers.DeleteAccount)
		accounts.GET("/perfil/:username", controllers.Profile)
	}

	entradas := r.Group("/entradas")
	{
		entradas.GET("/:topico", controllers.GetEntries)
		entradas.GET("/:topico/criar", middleware.AuthRequired(), controllers.NewEntryForm)
		entradas.POST("/:topico/criar", middleware.AuthRequired(), controllers.CreateEntry)
		entradas.GET("/:topico/ver/:id", middleware.AuthRequired(), controllers.GetEntryDetail)
		entradas.GET("/:topico/editar/:id", middleware.AuthRequired(), controllers.EditEntryForm)
		entradas.POST("/:topico/editar/:id", middleware.AuthRequired(), controllers.UpdateEntry)
		entradas.POST("/:topico/apagar/:id", middleware.AuthRequired(), controllers.DeleteEntry)
	}

	admin := r.Group("/admin")
	{
		admin.Use(middleware.RequireStaff())

		admin.POST("/topicos", controllers.CreateTopic)
	}

	return r
}
