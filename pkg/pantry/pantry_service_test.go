package pantry

import (
	"context"
	"testing"
	"time"

	"smart-grocery-api/domain"
	"smart-grocery-api/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePantryRepository struct {
	items map[string]*entities.PantryItem
}

func newFakePantryRepository() *fakePantryRepository {
	return &fakePantryRepository{items: make(map[string]*entities.PantryItem)}
}

func (r *fakePantryRepository) AddPantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakePantryRepository) UpdatePantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) DeletePantryItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakePantryRepository) GetPantryItems(_ context.Context, userID string, category string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePantryRepository) GetExpiringItems(_ context.Context, userID string, cutoff time.Time) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() != userID || item.ExpirationDate == nil || item.ExpirationDate.After(cutoff) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePantryRepository) GetLowStockItems(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() != userID || item.Quantity == nil || *item.Quantity > LowStockThreshold {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePantryRepository) GetItemsInStock(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if item.Quantity != nil && *item.Quantity <= 0 {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePantryRepository) GetCategories(_ context.Context, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, item := range r.items {
		if item.UserID.String() != userID || item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out, nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUsers(_ context.Context) ([]*entities.User, error) {
	var out []*entities.User
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

// fakeNotificationRepository records created reminders; the other methods
// exist only to satisfy the interface.
type fakeNotificationRepository struct {
	created []*entities.Notification
}

func (r *fakeNotificationRepository) CreateNotification(_ context.Context, notification *entities.Notification) error {
	r.created = append(r.created, notification)
	return nil
}

func (r *fakeNotificationRepository) GetNotificationByID(_ context.Context, id string) (*entities.Notification, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepository) UpdateNotification(_ context.Context, notification *entities.Notification) error {
	return nil
}

func (r *fakeNotificationRepository) DeleteNotification(_ context.Context, id string) error {
	return nil
}

func (r *fakeNotificationRepository) GetNotificationsByUser(_ context.Context, userID string, status string) ([]*entities.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepository) GetDueNotifications(_ context.Context, userID string, now time.Time) ([]*entities.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepository) FindPendingByPantryItem(_ context.Context, pantryItemID string) (*entities.Notification, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepository) GetPantryItemsWithExpiry(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (r *fakeNotificationRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func setupPantry(t *testing.T) (*fakePantryRepository, *fakeNotificationRepository, *pantryService, *entities.User) {
	t.Helper()

	pantryRepo := newFakePantryRepository()
	notificationRepo := &fakeNotificationRepository{}
	userRepo := &fakeUserRepository{users: make(map[string]*entities.User)}

	owner := &entities.User{ID: uuid.New(), Email: "demo@smartgrocery.app"}
	userRepo.users[owner.ID.String()] = owner

	service := &pantryService{
		pantryRepository:       pantryRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
		now:                    fixedNow,
	}
	return pantryRepo, notificationRepo, service, owner
}

func TestAddPantryItemSchedulesReminder(t *testing.T) {
	_, notificationRepo, service, owner := setupPantry(t)

	res, err := service.AddPantryItem(context.Background(), domain.CreatePantryItemRequest{
		UserID:         owner.ID.String(),
		Name:           "Milk",
		Quantity:       floatPtr(1),
		ExpirationDate: "2026-09-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "manual", res.Source)

	require.Len(t, notificationRepo.created, 1)
	reminder := notificationRepo.created[0]
	assert.Equal(t, domain.NotificationStatusPending, reminder.Status)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), reminder.ScheduledFor)
}

func TestAddPantryItemSkipsPastReminder(t *testing.T) {
	_, notificationRepo, service, owner := setupPantry(t)

	// Expires tomorrow; with the default 3 day window the notify date is in
	// the past, so no reminder is created but the item itself succeeds.
	res, err := service.AddPantryItem(context.Background(), domain.CreatePantryItemRequest{
		UserID:         owner.ID.String(),
		Name:           "Chicken",
		ExpirationDate: "2026-08-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "Chicken", res.Name)
	assert.Empty(t, notificationRepo.created)
}

func TestAddPantryItemWithoutExpiration(t *testing.T) {
	_, notificationRepo, service, owner := setupPantry(t)

	res, err := service.AddPantryItem(context.Background(), domain.CreatePantryItemRequest{
		UserID: owner.ID.String(),
		Name:   "Rice",
	})
	require.NoError(t, err)
	assert.Nil(t, res.ExpirationDate)
	assert.Nil(t, res.DaysUntilExpiry)
	assert.Empty(t, notificationRepo.created)
}

func TestAddPantryItemRejectsBadDate(t *testing.T) {
	_, _, service, owner := setupPantry(t)

	_, err := service.AddPantryItem(context.Background(), domain.CreatePantryItemRequest{
		UserID:         owner.ID.String(),
		Name:           "Milk",
		ExpirationDate: "09/10/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestAddPantryItemUnknownUser(t *testing.T) {
	_, _, service, _ := setupPantry(t)

	_, err := service.AddPantryItem(context.Background(), domain.CreatePantryItemRequest{
		UserID: uuid.NewString(),
		Name:   "Milk",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetExpiringItemsEnrichesResponses(t *testing.T) {
	pantryRepo, _, service, owner := setupPantry(t)

	bread := &entities.PantryItem{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Name:           "Bread",
		Quantity:       floatPtr(1),
		ExpirationDate: timePtr(fixedNow().AddDate(0, 0, 2)),
	}
	pantryRepo.items[bread.ID.String()] = bread

	res, err := service.GetExpiringItems(context.Background(), owner.ID.String(), 7)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)

	item := res.Items[0]
	assert.True(t, item.IsExpiringSoon)
	assert.True(t, item.IsLowStock)
	require.NotNil(t, item.DaysUntilExpiry)
	assert.Equal(t, 2, *item.DaysUntilExpiry)
}

func TestUpdatePantryItemRejectsNegativeQuantity(t *testing.T) {
	pantryRepo, _, service, owner := setupPantry(t)

	rice := &entities.PantryItem{ID: uuid.New(), UserID: owner.ID, Name: "Rice"}
	pantryRepo.items[rice.ID.String()] = rice

	_, err := service.UpdatePantryItem(context.Background(), rice.ID.String(), domain.UpdatePantryItemRequest{
		Quantity: floatPtr(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestDeletePantryItemNotFound(t *testing.T) {
	_, _, service, _ := setupPantry(t)

	err := service.DeletePantryItem(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}
