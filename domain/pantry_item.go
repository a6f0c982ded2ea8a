package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"

	ErrPantryItemNotFound    = errors.New("pantry item not found")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
)

type (
	CreatePantryItemRequest struct {
		UserID         string   `json:"user_id" validate:"required,uuid"`
		Name           string   `json:"name" validate:"required,max=255"`
		Quantity       *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit           string   `json:"unit" validate:"omitempty,max=50"`
		Category       string   `json:"category" validate:"omitempty,max=100"`
		ExpirationDate string   `json:"expiration_date" validate:"omitempty"`
		Source         string   `json:"source" validate:"omitempty,max=100"`
	}

	UpdatePantryItemRequest struct {
		Name           string   `json:"name" validate:"omitempty,max=255"`
		Quantity       *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit           string   `json:"unit" validate:"omitempty,max=50"`
		Category       string   `json:"category" validate:"omitempty,max=100"`
		ExpirationDate string   `json:"expiration_date" validate:"omitempty"`
		Source         string   `json:"source" validate:"omitempty,max=100"`
	}

	PantryItemResponse struct {
		ID              string     `json:"id"`
		UserID          string     `json:"user_id"`
		Name            string     `json:"name"`
		Quantity        *float64   `json:"quantity"`
		Unit            string     `json:"unit,omitempty"`
		Category        string     `json:"category,omitempty"`
		ExpirationDate  *time.Time `json:"expiration_date"`
		Source          string     `json:"source"`
		IsExpiringSoon  bool       `json:"is_expiring_soon"`
		IsLowStock      bool       `json:"is_low_stock"`
		DaysUntilExpiry *int       `json:"days_until_expiry"`
		CreatedAt       time.Time  `json:"created_at"`
		UpdatedAt       time.Time  `json:"updated_at"`
	}

	PantryItemListResponse struct {
		Items []PantryItemResponse `json:"items"`
		Count int                  `json:"count"`
	}
)
