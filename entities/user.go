package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Name               string    `json:"name,omitempty"`
	Timezone           string    `json:"timezone,omitempty"`
	DietaryTags        string    `json:"dietary_tags,omitempty"`
	Allergies          string    `json:"allergies,omitempty"`
	ReminderWindowDays *int      `json:"reminder_window_days,omitempty"`
	NotifyEmail        bool      `gorm:"default:true" json:"notify_email"`
	NotifyPush         bool      `gorm:"default:false" json:"notify_push"`
	NotifyExpiring     bool      `gorm:"default:true" json:"notify_expiring"`
	NotifyLowStock     bool      `gorm:"default:true" json:"notify_low_stock"`

	PantryItems  []*PantryItem  `gorm:"foreignKey:UserID" json:"-"`
	GroceryLists []*GroceryList `gorm:"foreignKey:UserID" json:"-"`
	MealIdeas    []*MealIdea    `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
