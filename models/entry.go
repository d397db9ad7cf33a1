package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is a timestamped piece of text a user files under a topic.
// CreatedAt is set once; UpdatedAt is re-stamped on every save.
type Entry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"texto_entrada" gorm:"type:text;not null"`
	TopicID   uuid.UUID `json:"topic_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Topic *Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// URL is the public detail path for this entry, under its topic's slug.
func (e *Entry) URL(topicSlug string) string {
	return fmt.Sprintf("/entradas/%s/ver/%d", topicSlug, e.ID)
}
