package entities

import (
	"github.com/google/uuid"
)

type GroceryList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"not null;index" json:"user_id"`
	Title  string    `gorm:"not null" json:"title"`
	Status string    `gorm:"default:active" json:"status"` // "active", "completed", "archived"

	User  *User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Items []*GroceryListItem `gorm:"foreignKey:GroceryListID;constraint:OnDelete:CASCADE" json:"items"`
	Timestamp
}

type GroceryListItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroceryListID uuid.UUID  `gorm:"not null;index" json:"grocery_list_id"`
	PantryItemID  *uuid.UUID `json:"pantry_item_id,omitempty"`
	Name          string     `gorm:"not null" json:"name"`
	Quantity      *float64   `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit          string     `json:"unit,omitempty"`
	Category      string     `json:"category,omitempty"`
	Note          string     `json:"note,omitempty"`
	IsChecked     bool       `gorm:"default:false" json:"is_checked"`

	GroceryList *GroceryList `gorm:"foreignKey:GroceryListID" json:"-"`
	Timestamp
}
