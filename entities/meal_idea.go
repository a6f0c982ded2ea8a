package entities

import (
	"github.com/google/uuid"
)

type MealIdea struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"not null;index" json:"user_id"`
	Title  string    `gorm:"not null" json:"title"`
	Notes  string    `gorm:"type:text" json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
