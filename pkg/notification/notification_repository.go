package notification

import (
	"context"
	"time"

	"smart-grocery-api/entities"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		UpdateNotification(ctx context.Context, notification *entities.Notification) error
		DeleteNotification(ctx context.Context, id string) error
		GetNotificationsByUser(ctx context.Context, userID string, status string) ([]*entities.Notification, error)
		GetDueNotifications(ctx context.Context, userID string, now time.Time) ([]*entities.Notification, error)
		FindPendingByPantryItem(ctx context.Context, pantryItemID string) (*entities.Notification, error)

		// Pantry item lookups needed by the scheduler; queried here rather
		// than through the pantry package to keep the dependency direction
		// one way (pantry -> notification).
		GetPantryItemsWithExpiry(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).
		Preload("PantryItem").
		Where("id = ?", id).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) UpdateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Notification{}).Error
}

func (r *notificationRepository) GetNotificationsByUser(ctx context.Context, userID string, status string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification

	query := r.db.WithContext(ctx).
		Preload("PantryItem").
		Joins("JOIN pantry_items ON pantry_items.id = notifications.pantry_item_id").
		Where("pantry_items.user_id = ?", userID)
	if status != "" {
		query = query.Where("notifications.status = ?", status)
	}

	if err := query.Order("notifications.scheduled_for asc").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) GetDueNotifications(ctx context.Context, userID string, now time.Time) ([]*entities.Notification, error) {
	var notifications []*entities.Notification

	if err := r.db.WithContext(ctx).
		Preload("PantryItem").
		Joins("JOIN pantry_items ON pantry_items.id = notifications.pantry_item_id").
		Where("pantry_items.user_id = ? AND notifications.status = ? AND notifications.scheduled_for <= ?",
			userID, "pending", now).
		Order("notifications.scheduled_for asc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) FindPendingByPantryItem(ctx context.Context, pantryItemID string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).
		Where("pantry_item_id = ? AND status = ?", pantryItemID, "pending").
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetPantryItemsWithExpiry(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expiration_date IS NOT NULL", userID).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *notificationRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
