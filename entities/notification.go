package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PantryItemID uuid.UUID  `gorm:"not null;index" json:"pantry_item_id"`
	ScheduledFor time.Time  `gorm:"not null" json:"scheduled_for"`
	Status       string     `gorm:"default:pending;index" json:"status"` // "pending", "sent", "cancelled"
	SentAt       *time.Time `json:"sent_at,omitempty"`

	PantryItem *PantryItem `gorm:"foreignKey:PantryItemID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
