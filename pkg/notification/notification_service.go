package notification

import (
	"context"
	"errors"
	"time"

	"smart-grocery-api/domain"
	"smart-grocery-api/entities"
	"smart-grocery-api/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		CreateNotification(ctx context.Context, req domain.CreateNotificationRequest) (domain.NotificationResponse, error)
		GetNotificationByID(ctx context.Context, id string) (domain.NotificationResponse, error)
		GetNotifications(ctx context.Context, userID string, status string) ([]domain.NotificationResponse, error)
		GetDueNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error)
		UpdateNotification(ctx context.Context, id string, req domain.UpdateNotificationRequest) (domain.NotificationResponse, error)
		DeleteNotification(ctx context.Context, id string) error
		MarkSent(ctx context.Context, id string) (domain.NotificationResponse, error)
		Cancel(ctx context.Context, id string) (domain.NotificationResponse, error)
		AutoSchedule(ctx context.Context, userID string) (int, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		userRepository         user.UserRepository
		now                    func() time.Time
	}
)

func NewNotificationService(notificationRepository NotificationRepository, userRepository user.UserRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		now:                    time.Now,
	}
}

// ComputeNotifyDate returns the moment a reminder for an item should fire:
// the expiration date minus the user's reminder window.
func ComputeNotifyDate(expirationDate time.Time, reminderWindowDays int) time.Time {
	return expirationDate.AddDate(0, 0, -reminderWindowDays)
}

// AutoSchedule creates a pending notification for every pantry item of the
// user that has an expiration date, no pending notification yet, and a
// notify date still in the future. Items whose notify date has already
// passed are skipped silently. Repeated invocation with unchanged pantry
// data creates nothing, so the operation is idempotent.
//
// The per-item check-then-insert is not transactionally isolated; two
// concurrent calls for the same user can both pass the pending check before
// either inserts. Accepted for this single-user product.
func (s *notificationService) AutoSchedule(ctx context.Context, userID string) (int, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}

	reminderDays := user.ReminderWindow(owner)

	items, err := s.notificationRepository.GetPantryItemsWithExpiry(ctx, userID)
	if err != nil {
		return 0, err
	}

	now := s.now()
	created := 0
	for _, item := range items {
		if _, err := s.notificationRepository.FindPendingByPantryItem(ctx, item.ID.String()); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}

		notifyDate := ComputeNotifyDate(*item.ExpirationDate, reminderDays)
		if notifyDate.Before(now) {
			continue
		}

		notification := &entities.Notification{
			ID:           uuid.New(),
			PantryItemID: item.ID,
			ScheduledFor: notifyDate,
			Status:       domain.NotificationStatusPending,
		}
		if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
			continue
		}
		created++
	}

	return created, nil
}

func (s *notificationService) CreateNotification(ctx context.Context, req domain.CreateNotificationRequest) (domain.NotificationResponse, error) {
	item, err := s.notificationRepository.GetPantryItemByID(ctx, req.PantryItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.NotificationResponse{}, err
	}

	scheduledFor, err := time.Parse(time.RFC3339, req.ScheduledFor)
	if err != nil {
		return domain.NotificationResponse{}, domain.ErrInvalidScheduledFor
	}

	status := req.Status
	if status == "" {
		status = domain.NotificationStatusPending
	}

	notification := &entities.Notification{
		ID:           uuid.New(),
		PantryItemID: item.ID,
		ScheduledFor: scheduledFor,
		Status:       status,
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return domain.NotificationResponse{}, err
	}

	notification.PantryItem = item
	return toNotificationResponse(notification), nil
}

func (s *notificationService) GetNotificationByID(ctx context.Context, id string) (domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrNotificationNotFound
		}
		return domain.NotificationResponse{}, err
	}
	return toNotificationResponse(notification), nil
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, status string) ([]domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetNotificationsByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, toNotificationResponse(notification))
	}
	return response, nil
}

func (s *notificationService) GetDueNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error) {
	notifications, err := s.notificationRepository.GetDueNotifications(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, toNotificationResponse(notification))
	}
	return response, nil
}

func (s *notificationService) UpdateNotification(ctx context.Context, id string, req domain.UpdateNotificationRequest) (domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrNotificationNotFound
		}
		return domain.NotificationResponse{}, err
	}

	if req.ScheduledFor != "" {
		scheduledFor, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return domain.NotificationResponse{}, domain.ErrInvalidScheduledFor
		}
		notification.ScheduledFor = scheduledFor
	}
	if req.Status != "" {
		notification.Status = req.Status
	}

	if err := s.notificationRepository.UpdateNotification(ctx, notification); err != nil {
		return domain.NotificationResponse{}, err
	}
	return toNotificationResponse(notification), nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string) error {
	if _, err := s.notificationRepository.GetNotificationByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return s.notificationRepository.DeleteNotification(ctx, id)
}

func (s *notificationService) MarkSent(ctx context.Context, id string) (domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrNotificationNotFound
		}
		return domain.NotificationResponse{}, err
	}

	sentAt := s.now()
	notification.Status = domain.NotificationStatusSent
	notification.SentAt = &sentAt

	if err := s.notificationRepository.UpdateNotification(ctx, notification); err != nil {
		return domain.NotificationResponse{}, err
	}
	return toNotificationResponse(notification), nil
}

func (s *notificationService) Cancel(ctx context.Context, id string) (domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrNotificationNotFound
		}
		return domain.NotificationResponse{}, err
	}

	notification.Status = domain.NotificationStatusCancelled

	if err := s.notificationRepository.UpdateNotification(ctx, notification); err != nil {
		return domain.NotificationResponse{}, err
	}
	return toNotificationResponse(notification), nil
}

func toNotificationResponse(notification *entities.Notification) domain.NotificationResponse {
	response := domain.NotificationResponse{
		ID:           notification.ID.String(),
		PantryItemID: notification.PantryItemID.String(),
		ScheduledFor: notification.ScheduledFor,
		Status:       notification.Status,
		SentAt:       notification.SentAt,
		CreatedAt:    notification.CreatedAt,
	}
	if notification.PantryItem != nil {
		response.PantryItemName = notification.PantryItem.Name
		response.ExpirationDate = notification.PantryItem.ExpirationDate
	}
	return response
}
