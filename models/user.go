package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:254;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	IsStaff     bool      `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Entries []Entry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// CanModerate reports whether the user carries the staff capability.
// Superusers inherit it.
func (u *User) CanModerate() bool {
	return u.IsStaff || u.IsSuperuser
}

// ProfileURL is the public profile path for this user.
func (u *User) ProfileURL() string {
	return "/accounts/perfil/" + u.Username
}
