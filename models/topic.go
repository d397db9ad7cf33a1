package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Topic struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Slug      string    `json:"slug" gorm:"size:200;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Entries []Entry `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Excerpt returns the title, shortened to 35 runes for listings.
func (t *Topic) Excerpt() string {
	runes := []rune(t.Title)
	if len(runes) > 35 {
		return string(runes[:35]) + "..."
	}
	return t.Title
}

// EntriesURL is the public entry list path for this topic.
func (t *Topic) EntriesURL() string {
	return "/entradas/" + t.Slug
}
