package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/diarioweb/diario-backend/config"
	"github.com/diarioweb/diario-backend/models"
)

// TopicWithCount carries a topic row annotated with its live entry count.
type TopicWithCount struct {
	models.Topic
	NumEntries int64 `json:"num_entradas"`
}

// GetTopics lists every topic, newest first, each with its entry count.
func GetTopics(c *gin.Context) {
	topics := []TopicWithCount{}
	err := config.DB.Model(&models.Topic{}).
		Select("topics.*, count(entries.id) AS num_entries").
		Joins("LEFT JOIN entries ON entries.topic_id = topics.id").
		Group("topics.id").
		Order("topics.created_at DESC").
		Find(&topics).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível listar os tópicos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"topicos": topics})
}

// CreateTopic is the staff-only back-office creation path. The slug is
// derived from the title unless one is supplied.
func CreateTopic(c *gin.Context) {
	var input struct {
		Title string `form:"topico" json:"topico"`
		Slug  string `form:"slug" json:"slug"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusOK, gin.H{"errors": gin.H{"topico": msgRequired}})
		return
	}

	topic := models.Topic{
		Title: input.Title,
		Slug:  input.Slug,
	}
	if topic.Slug == "" {
		topic.Slug = slug.Make(input.Title)
	}

	var existing models.Topic
	if err := config.DB.Where("slug = ?", topic.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"errors": gin.H{"slug": "Já existe um tópico com este slug."}})
		return
	}

	if err := config.DB.Create(&topic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar o tópico"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tópico criado com sucesso",
		"topico":  topic,
	})
}
