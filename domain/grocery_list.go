package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateGroceryList = "grocery list created successfully"
	MessageSuccessUpdateGroceryList = "grocery list updated successfully"
	MessageSuccessDeleteGroceryList = "grocery list deleted successfully"
	MessageSuccessGetGroceryLists   = "grocery lists retrieved successfully"
	MessageSuccessAddListItem       = "item added to list successfully"
	MessageSuccessUpdateListItem    = "list item updated successfully"
	MessageSuccessRemoveListItem    = "item removed from list"

	MessageFailedCreateGroceryList = "failed to create grocery list"
	MessageFailedUpdateGroceryList = "failed to update grocery list"
	MessageFailedDeleteGroceryList = "failed to delete grocery list"
	MessageFailedGetGroceryLists   = "failed to retrieve grocery lists"
	MessageFailedAddListItem       = "failed to add item to list"
	MessageFailedUpdateListItem    = "failed to update list item"
	MessageFailedRemoveListItem    = "failed to remove item from list"
	MessageFailedAutoPopulate      = "failed to auto-populate list"

	ErrGroceryListNotFound     = errors.New("grocery list not found")
	ErrGroceryListItemNotFound = errors.New("item not found in this list")
	ErrInvalidListStatus       = errors.New("invalid grocery list status")
)

type (
	CreateGroceryListRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Title  string `json:"title" validate:"required,max=255"`
		Status string `json:"status" validate:"omitempty,oneof=active completed archived"`
	}

	UpdateGroceryListRequest struct {
		Title  string `json:"title" validate:"omitempty,max=255"`
		Status string `json:"status" validate:"omitempty,oneof=active completed archived"`
	}

	CreateGroceryListItemRequest struct {
		Name         string   `json:"name" validate:"required,max=255"`
		Quantity     *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit         string   `json:"unit" validate:"omitempty,max=50"`
		Category     string   `json:"category" validate:"omitempty,max=100"`
		Note         string   `json:"note" validate:"omitempty,max=1000"`
		PantryItemID string   `json:"pantry_item_id" validate:"omitempty,uuid"`
	}

	UpdateGroceryListItemRequest struct {
		Name      string   `json:"name" validate:"omitempty,max=255"`
		Quantity  *float64 `json:"quantity" validate:"omitempty,min=0"`
		Unit      string   `json:"unit" validate:"omitempty,max=50"`
		Category  string   `json:"category" validate:"omitempty,max=100"`
		Note      string   `json:"note" validate:"omitempty,max=1000"`
		IsChecked *bool    `json:"is_checked"`
	}

	GroceryListItemResponse struct {
		ID            string    `json:"id"`
		GroceryListID string    `json:"grocery_list_id"`
		PantryItemID  *string   `json:"pantry_item_id,omitempty"`
		Name          string    `json:"name"`
		Quantity      *float64  `json:"quantity"`
		Unit          string    `json:"unit,omitempty"`
		Category      string    `json:"category,omitempty"`
		Note          string    `json:"note,omitempty"`
		IsChecked     bool      `json:"is_checked"`
		CreatedAt     time.Time `json:"created_at"`
	}

	GroceryListResponse struct {
		ID        string                    `json:"id"`
		UserID    string                    `json:"user_id"`
		Title     string                    `json:"title"`
		Status    string                    `json:"status"`
		Items     []GroceryListItemResponse `json:"items"`
		ItemCount int                       `json:"item_count"`
		CreatedAt time.Time                 `json:"created_at"`
	}
)
