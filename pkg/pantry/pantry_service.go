package pantry

import (
	"context"
	"errors"
	"time"

	"smart-grocery-api/domain"
	"smart-grocery-api/entities"
	"smart-grocery-api/pkg/notification"
	"smart-grocery-api/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.CreatePantryItemRequest) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context, userID string, category string) ([]domain.PantryItemResponse, error)
		GetExpiringItems(ctx context.Context, userID string, days int) (domain.PantryItemListResponse, error)
		GetLowStockItems(ctx context.Context, userID string) (domain.PantryItemListResponse, error)
		GetCategories(ctx context.Context, userID string) ([]string, error)
		GetPantryItemByID(ctx context.Context, id string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) (domain.PantryItemResponse, error)
		DeletePantryItem(ctx context.Context, id string) error
	}

	pantryService struct {
		pantryRepository       PantryRepository
		userRepository         user.UserRepository
		notificationRepository notification.NotificationRepository
		now                    func() time.Time
	}
)

func NewPantryService(
	pantryRepository PantryRepository,
	userRepository user.UserRepository,
	notificationRepository notification.NotificationRepository,
) PantryService {
	return &pantryService{
		pantryRepository:       pantryRepository,
		userRepository:         userRepository,
		notificationRepository: notificationRepository,
		now:                    time.Now,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.CreatePantryItemRequest) (domain.PantryItemResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrUserNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpirationDate
		}
		expirationDate = &parsed
	}

	if req.Quantity != nil && *req.Quantity < 0 {
		return domain.PantryItemResponse{}, domain.ErrInvalidQuantity
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	item := &entities.PantryItem{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Category:       req.Category,
		ExpirationDate: expirationDate,
		Source:         source,
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	s.scheduleReminderForNewItem(ctx, item, owner)

	return s.toPantryItemResponse(item, user.ReminderWindow(owner)), nil
}

// scheduleReminderForNewItem creates the pending reminder for a freshly
// created item when its notify date is still in the future. A notify date
// already in the past is a silent skip, not an error, and a failed insert
// never fails the item creation.
func (s *pantryService) scheduleReminderForNewItem(ctx context.Context, item *entities.PantryItem, owner *entities.User) {
	if item.ExpirationDate == nil {
		return
	}

	notifyDate := notification.ComputeNotifyDate(*item.ExpirationDate, user.ReminderWindow(owner))
	if notifyDate.Before(s.now()) {
		return
	}

	_ = s.notificationRepository.CreateNotification(ctx, &entities.Notification{
		ID:           uuid.New(),
		PantryItemID: item.ID,
		ScheduledFor: notifyDate,
		Status:       domain.NotificationStatusPending,
	})
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string, category string) ([]domain.PantryItemResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	items, err := s.pantryRepository.GetPantryItems(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	return s.toPantryItemResponses(items, user.ReminderWindow(owner)), nil
}

func (s *pantryService) GetExpiringItems(ctx context.Context, userID string, days int) (domain.PantryItemListResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemListResponse{}, domain.ErrUserNotFound
		}
		return domain.PantryItemListResponse{}, err
	}

	cutoff := s.now().AddDate(0, 0, days)
	items, err := s.pantryRepository.GetExpiringItems(ctx, userID, cutoff)
	if err != nil {
		return domain.PantryItemListResponse{}, err
	}

	response := s.toPantryItemResponses(items, user.ReminderWindow(owner))
	return domain.PantryItemListResponse{Items: response, Count: len(response)}, nil
}

func (s *pantryService) GetLowStockItems(ctx context.Context, userID string) (domain.PantryItemListResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemListResponse{}, domain.ErrUserNotFound
		}
		return domain.PantryItemListResponse{}, err
	}

	items, err := s.pantryRepository.GetLowStockItems(ctx, userID)
	if err != nil {
		return domain.PantryItemListResponse{}, err
	}

	response := s.toPantryItemResponses(items, user.ReminderWindow(owner))
	return domain.PantryItemListResponse{Items: response, Count: len(response)}, nil
}

func (s *pantryService) GetCategories(ctx context.Context, userID string) ([]string, error) {
	return s.pantryRepository.GetCategories(ctx, userID)
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	reminderDays := user.DefaultReminderWindowDays
	if owner, err := s.userRepository.GetUserByID(ctx, item.UserID.String()); err == nil {
		reminderDays = user.ReminderWindow(owner)
	}

	return s.toPantryItemResponse(item, reminderDays), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.PantryItemResponse{}, domain.ErrInvalidQuantity
		}
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = &parsed
	}
	if req.Source != "" {
		item.Source = req.Source
	}

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	reminderDays := user.DefaultReminderWindowDays
	if owner, err := s.userRepository.GetUserByID(ctx, item.UserID.String()); err == nil {
		reminderDays = user.ReminderWindow(owner)
	}

	return s.toPantryItemResponse(item, reminderDays), nil
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string) error {
	if _, err := s.pantryRepository.GetPantryItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}
	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) toPantryItemResponse(item *entities.PantryItem, reminderWindowDays int) domain.PantryItemResponse {
	enrichment := Enrich(item, reminderWindowDays, s.now())

	return domain.PantryItemResponse{
		ID:              item.ID.String(),
		UserID:          item.UserID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		Category:        item.Category,
		ExpirationDate:  item.ExpirationDate,
		Source:          item.Source,
		IsExpiringSoon:  enrichment.IsExpiringSoon,
		IsLowStock:      enrichment.IsLowStock,
		DaysUntilExpiry: enrichment.DaysUntilExpiry,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (s *pantryService) toPantryItemResponses(items []*entities.PantryItem, reminderWindowDays int) []domain.PantryItemResponse {
	response := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toPantryItemResponse(item, reminderWindowDays))
	}
	return response
}
