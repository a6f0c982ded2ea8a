package grocery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-grocery-api/domain"
	"smart-grocery-api/entities"
	"smart-grocery-api/pkg/pantry"
	"smart-grocery-api/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRestockQuantity is suggested for low stock items added to a list.
const DefaultRestockQuantity = 5.0

type (
	GroceryService interface {
		CreateGroceryList(ctx context.Context, req domain.CreateGroceryListRequest) (domain.GroceryListResponse, error)
		GetGroceryListByID(ctx context.Context, id string) (domain.GroceryListResponse, error)
		GetGroceryLists(ctx context.Context, userID string, status string) ([]domain.GroceryListResponse, error)
		UpdateGroceryList(ctx context.Context, id string, req domain.UpdateGroceryListRequest) (domain.GroceryListResponse, error)
		DeleteGroceryList(ctx context.Context, id string) error
		AddListItem(ctx context.Context, listID string, req domain.CreateGroceryListItemRequest) (domain.GroceryListItemResponse, error)
		UpdateListItem(ctx context.Context, listID string, itemID string, req domain.UpdateGroceryListItemRequest) (domain.GroceryListItemResponse, error)
		DeleteListItem(ctx context.Context, listID string, itemID string) error
		AddExpiringItems(ctx context.Context, listID string, days int) (int, error)
		AddLowStockItems(ctx context.Context, listID string) (int, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		pantryRepository  pantry.PantryRepository
		userRepository    user.UserRepository
		now               func() time.Time
	}
)

func NewGroceryService(
	groceryRepository GroceryRepository,
	pantryRepository pantry.PantryRepository,
	userRepository user.UserRepository,
) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		pantryRepository:  pantryRepository,
		userRepository:    userRepository,
		now:               time.Now,
	}
}

func (s *groceryService) CreateGroceryList(ctx context.Context, req domain.CreateGroceryListRequest) (domain.GroceryListResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListResponse{}, domain.ErrUserNotFound
		}
		return domain.GroceryListResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	list := &entities.GroceryList{
		ID:     uuid.New(),
		UserID: owner.ID,
		Title:  req.Title,
		Status: status,
	}

	if err := s.groceryRepository.CreateGroceryList(ctx, list); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list), nil
}

func (s *groceryService) GetGroceryListByID(ctx context.Context, id string) (domain.GroceryListResponse, error) {
	list, err := s.findList(ctx, id)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}
	return toGroceryListResponse(list), nil
}

func (s *groceryService) GetGroceryLists(ctx context.Context, userID string, status string) ([]domain.GroceryListResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	lists, err := s.groceryRepository.GetGroceryLists(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryListResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, toGroceryListResponse(list))
	}
	return response, nil
}

func (s *groceryService) UpdateGroceryList(ctx context.Context, id string, req domain.UpdateGroceryListRequest) (domain.GroceryListResponse, error) {
	list, err := s.findList(ctx, id)
	if err != nil {
		return domain.GroceryListResponse{}, err
	}

	if req.Title != "" {
		list.Title = req.Title
	}
	if req.Status != "" {
		list.Status = req.Status
	}

	if err := s.groceryRepository.UpdateGroceryList(ctx, list); err != nil {
		return domain.GroceryListResponse{}, err
	}

	return toGroceryListResponse(list), nil
}

func (s *groceryService) DeleteGroceryList(ctx context.Context, id string) error {
	if _, err := s.findList(ctx, id); err != nil {
		return err
	}
	return s.groceryRepository.DeleteGroceryList(ctx, id)
}

func (s *groceryService) AddListItem(ctx context.Context, listID string, req domain.CreateGroceryListItemRequest) (domain.GroceryListItemResponse, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return domain.GroceryListItemResponse{}, err
	}

	item := &entities.GroceryListItem{
		ID:            uuid.New(),
		GroceryListID: list.ID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Category:      req.Category,
		Note:          req.Note,
	}

	if req.PantryItemID != "" {
		pantryItemID, err := uuid.Parse(req.PantryItemID)
		if err != nil {
			return domain.GroceryListItemResponse{}, domain.ErrParseUUID
		}
		item.PantryItemID = &pantryItemID
	}

	if err := s.groceryRepository.AddListItem(ctx, item); err != nil {
		return domain.GroceryListItemResponse{}, err
	}

	return toGroceryListItemResponse(item), nil
}

func (s *groceryService) UpdateListItem(ctx context.Context, listID string, itemID string, req domain.UpdateGroceryListItemRequest) (domain.GroceryListItemResponse, error) {
	if _, err := s.findList(ctx, listID); err != nil {
		return domain.GroceryListItemResponse{}, err
	}

	item, err := s.groceryRepository.GetListItemByID(ctx, listID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryListItemResponse{}, domain.ErrGroceryListItemNotFound
		}
		return domain.GroceryListItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != nil {
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Note != "" {
		item.Note = req.Note
	}
	if req.IsChecked != nil {
		item.IsChecked = *req.IsChecked
	}

	if err := s.groceryRepository.UpdateListItem(ctx, item); err != nil {
		return domain.GroceryListItemResponse{}, err
	}

	return toGroceryListItemResponse(item), nil
}

func (s *groceryService) DeleteListItem(ctx context.Context, listID string, itemID string) error {
	if _, err := s.findList(ctx, listID); err != nil {
		return err
	}
	if _, err := s.groceryRepository.GetListItemByID(ctx, listID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryListItemNotFound
		}
		return err
	}
	return s.groceryRepository.DeleteListItem(ctx, listID, itemID)
}

// AddExpiringItems copies pantry items expiring within the given number of
// days onto the list. Items already present on the list through their pantry
// reference are skipped, so repeated calls do not duplicate entries. Returns
// the number of items added.
func (s *groceryService) AddExpiringItems(ctx context.Context, listID string, days int) (int, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().AddDate(0, 0, days)
	items, err := s.pantryRepository.GetExpiringItems(ctx, list.UserID.String(), cutoff)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		if s.alreadyOnList(ctx, listID, item.ID) {
			continue
		}

		pantryItemID := item.ID
		entry := &entities.GroceryListItem{
			ID:            uuid.New(),
			GroceryListID: list.ID,
			PantryItemID:  &pantryItemID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			Category:      item.Category,
			Note:          fmt.Sprintf("Expiring: %s", item.ExpirationDate.Format("2006-01-02")),
		}
		if err := s.groceryRepository.AddListItem(ctx, entry); err != nil {
			continue
		}
		added++
	}

	return added, nil
}

// AddLowStockItems copies pantry items at or below the low stock threshold
// onto the list with a default restock quantity. Deduplicates on the pantry
// reference the same way AddExpiringItems does.
func (s *groceryService) AddLowStockItems(ctx context.Context, listID string) (int, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return 0, err
	}

	items, err := s.pantryRepository.GetLowStockItems(ctx, list.UserID.String())
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		if s.alreadyOnList(ctx, listID, item.ID) {
			continue
		}

		pantryItemID := item.ID
		restock := DefaultRestockQuantity
		entry := &entities.GroceryListItem{
			ID:            uuid.New(),
			GroceryListID: list.ID,
			PantryItemID:  &pantryItemID,
			Name:          item.Name,
			Quantity:      &restock,
			Unit:          item.Unit,
			Category:      item.Category,
			Note:          fmt.Sprintf("Low stock (currently: %g)", *item.Quantity),
		}
		if err := s.groceryRepository.AddListItem(ctx, entry); err != nil {
			continue
		}
		added++
	}

	return added, nil
}

func (s *groceryService) findList(ctx context.Context, id string) (*entities.GroceryList, error) {
	list, err := s.groceryRepository.GetGroceryListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryListNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *groceryService) alreadyOnList(ctx context.Context, listID string, pantryItemID uuid.UUID) bool {
	_, err := s.groceryRepository.FindListItemByPantryRef(ctx, listID, pantryItemID.String())
	return err == nil
}

func toGroceryListItemResponse(item *entities.GroceryListItem) domain.GroceryListItemResponse {
	response := domain.GroceryListItemResponse{
		ID:            item.ID.String(),
		GroceryListID: item.GroceryListID.String(),
		Name:          item.Name,
		Quantity:      item.Quantity,
		Unit:          item.Unit,
		Category:      item.Category,
		Note:          item.Note,
		IsChecked:     item.IsChecked,
		CreatedAt:     item.CreatedAt,
	}
	if item.PantryItemID != nil {
		id := item.PantryItemID.String()
		response.PantryItemID = &id
	}
	return response
}

func toGroceryListResponse(list *entities.GroceryList) domain.GroceryListResponse {
	items := make([]domain.GroceryListItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, toGroceryListItemResponse(item))
	}

	return domain.GroceryListResponse{
		ID:        list.ID.String(),
		UserID:    list.UserID.String(),
		Title:     list.Title,
		Status:    list.Status,
		Items:     items,
		ItemCount: len(items),
		CreatedAt: list.CreatedAt,
	}
}
