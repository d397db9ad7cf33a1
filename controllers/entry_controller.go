package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/diarioweb/diario-backend/config"
	"github.com/diarioweb/diario-backend/models"
)

type EntryInput struct {
	Text string `form:"texto_entrada" json:"texto_entrada"`
}

// resolveTopic loads the topic for the route's slug, answering 404 when
// there is no match.
func resolveTopic(c *gin.Context) (*models.Topic, bool) {
	var topic models.Topic
	if err := config.DB.Where("slug = ?", c.Param("topico")).First(&topic).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tópico não encontrado"})
		return nil, false
	}
	return &topic, true
}

// resolveEntry loads an entry by its primary key alone; the route's topic
// slug is deliberately not part of the lookup.
func resolveEntry(c *gin.Context) (*models.Entry, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada não encontrada"})
		return nil, false
	}

	var entry models.Entry
	if err := config.DB.First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada não encontrada"})
		return nil, false
	}
	return &entry, true
}

// entryListPath builds the redirect target from the route's slug, not the
// resolved topic.
func entryListPath(c *gin.Context) string {
	return "/entradas/" + c.Param("topico")
}

// GetEntries lists a topic's entries newest first. Ties on the publish
// timestamp fall back to insertion order.
func GetEntries(c *gin.Context) {
	topic, ok := resolveTopic(c)
	if !ok {
		return
	}

	entries := []models.Entry{}
	err := config.DB.Where("topic_id = ?", topic.ID).
		Preload("User").
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível listar as entradas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topico":      topic.Slug,
		"nome_topico": topic.Title,
		"entradas":    entries,
	})
}

// NewEntryForm renders the creation form for a topic.
func NewEntryForm(c *gin.Context) {
	topic, ok := resolveTopic(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"topico": topic.Slug, "fields": []string{"texto_entrada"}})
}

// CreateEntry files a new entry under the route's topic, owned by the
// session identity.
func CreateEntry(c *gin.Context) {
	topic, ok := resolveTopic(c)
	if !ok {
		return
	}

	var input EntryInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		c.JSON(http.StatusOK, gin.H{"errors": gin.H{"texto_entrada": msgRequired}})
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sessão inválida"})
		return
	}

	entry := models.Entry{
		Text:    text,
		TopicID: topic.ID,
		UserID:  userID,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível criar a entrada"})
		return
	}

	c.Redirect(http.StatusFound, entryListPath(c))
}

// GetEntryDetail shows a single entry. Authentication required.
func GetEntryDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada não encontrada"})
		return
	}

	var entry models.Entry
	if err := config.DB.Preload("Topic").Preload("User").First(&entry, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada não encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entrada": entry})
}

// EditEntryForm renders the edit form with the current text.
func EditEntryForm(c *gin.Context) {
	entry, ok := resolveEntry(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"entrada": entry})
}

// UpdateEntry replaces an entry's text and re-stamps its edit timestamp.
// Any authenticated user may edit any entry.
func UpdateEntry(c *gin.Context) {
	entry, ok := resolveEntry(c)
	if !ok {
		return
	}

	var input EntryInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		c.JSON(http.StatusOK, gin.H{"errors": gin.H{"texto_entrada": msgRequired}})
		return
	}

	entry.Text = text
	if err := config.DB.Save(entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar a entrada"})
		return
	}

	c.Redirect(http.StatusFound, entryListPath(c))
}

// DeleteEntry destroys an entry immediately. A second delete of the same
// id answers 404.
func DeleteEntry(c *gin.Context) {
	entry, ok := resolveEntry(c)
	if !ok {
		return
	}

	if err := config.DB.Delete(entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível apagar a entrada"})
		return
	}

	c.Redirect(http.StatusFound, entryListPath(c))
}
