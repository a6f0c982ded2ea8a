package grocery

import (
	"context"

	"smart-grocery-api/entities"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		CreateGroceryList(ctx context.Context, list *entities.GroceryList) error
		GetGroceryListByID(ctx context.Context, id string) (*entities.GroceryList, error)
		GetGroceryLists(ctx context.Context, userID string, status string) ([]*entities.GroceryList, error)
		UpdateGroceryList(ctx context.Context, list *entities.GroceryList) error
		DeleteGroceryList(ctx context.Context, id string) error
		AddListItem(ctx context.Context, item *entities.GroceryListItem) error
		GetListItemByID(ctx context.Context, listID string, itemID string) (*entities.GroceryListItem, error)
		FindListItemByPantryRef(ctx context.Context, listID string, pantryItemID string) (*entities.GroceryListItem, error)
		UpdateListItem(ctx context.Context, item *entities.GroceryListItem) error
		DeleteListItem(ctx context.Context, listID string, itemID string) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) CreateGroceryList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *groceryRepository) GetGroceryListByID(ctx context.Context, id string) (*entities.GroceryList, error) {
	var list entities.GroceryList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("grocery_list_items.created_at ASC")
		}).
		Where("id = ?", id).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *groceryRepository) GetGroceryLists(ctx context.Context, userID string, status string) ([]*entities.GroceryList, error) {
	var lists []*entities.GroceryList
	query := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("grocery_list_items.created_at ASC")
		}).
		Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *groceryRepository) UpdateGroceryList(ctx context.Context, list *entities.GroceryList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *groceryRepository) DeleteGroceryList(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Select("Items").Delete(&entities.GroceryList{}, "id = ?", id).Error
}

func (r *groceryRepository) AddListItem(ctx context.Context, item *entities.GroceryListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) GetListItemByID(ctx context.Context, listID string, itemID string) (*entities.GroceryListItem, error) {
	var item entities.GroceryListItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND grocery_list_id = ?", itemID, listID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) FindListItemByPantryRef(ctx context.Context, listID string, pantryItemID string) (*entities.GroceryListItem, error) {
	var item entities.GroceryListItem
	if err := r.db.WithContext(ctx).
		Where("grocery_list_id = ? AND pantry_item_id = ?", listID, pantryItemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) UpdateListItem(ctx context.Context, item *entities.GroceryListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteListItem(ctx context.Context, listID string, itemID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND grocery_list_id = ?", itemID, listID).
		Delete(&entities.GroceryListItem{}).Error
}
