package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diarioweb/diario-backend/config"
	"github.com/diarioweb/diario-backend/models"
)

// Profile shows any user's profile with their full entry collection.
// No authentication required, own or otherwise.
func Profile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	entries := []models.Entry{}
	if err := config.DB.Where("user_id = ?", user.ID).Preload("Topic").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar as entradas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
		"entradas": entries,
	})
}

// DeleteAccountConfirm renders the confirmation step before deletion.
func DeleteAccountConfirm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": c.GetString("username"),
		"message":  "Tem certeza que deseja apagar sua conta? Todas as suas entradas serão removidas.",
	})
}

// DeleteAccount removes the calling user's own account. The target is
// always the session identity, never a path parameter. The user's entries
// go with it in the same transaction.
func DeleteAccount(c *gin.Context) {
	userID := c.GetString("user_id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Entry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao apagar a conta"})
		return
	}

	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/topicos/")
}
