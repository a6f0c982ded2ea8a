package entities

import (
	"time"

	"github.com/google/uuid"
)

type PantryItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `gorm:"not null;index" json:"user_id"`
	Name           string     `gorm:"not null" json:"name"`
	Quantity       *float64   `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit           string     `json:"unit,omitempty"`
	Category       string     `json:"category,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Source         string     `gorm:"default:manual" json:"source"`

	User          *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications []*Notification `gorm:"foreignKey:PantryItemID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
