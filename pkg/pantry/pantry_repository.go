package pantry

import (
	"context"
	"time"

	"smart-grocery-api/entities"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, id string) error
		GetPantryItems(ctx context.Context, userID string, category string) ([]*entities.PantryItem, error)
		GetExpiringItems(ctx context.Context, userID string, cutoff time.Time) ([]*entities.PantryItem, error)
		GetLowStockItems(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		GetItemsInStock(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		GetCategories(ctx context.Context, userID string) ([]string, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetPantryItems(ctx context.Context, userID string, category string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetExpiringItems(ctx context.Context, userID string, cutoff time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiration_date IS NOT NULL AND expiration_date <= ?", userID, cutoff).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetLowStockItems(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity IS NOT NULL AND quantity <= ?", userID, LowStockThreshold).
		Order("quantity asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetItemsInStock(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND (quantity > 0 OR quantity IS NULL)", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetCategories(ctx context.Context, userID string) ([]string, error) {
	var categories []string

	if err := r.db.WithContext(ctx).
		Model(&entities.PantryItem{}).
		Where("user_id = ? AND category IS NOT NULL AND category <> ''", userID).
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
