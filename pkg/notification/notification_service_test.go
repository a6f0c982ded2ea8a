package notification

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

type fakeNotificationRepository struct {
	notifications map[string]*entities.Notification
	pantryItems   map[string]*entities.PantryItem
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{
		notifications: make(map[string]*entities.Notification),
		pantryItems:   make(map[string]*entities.PantryItem),
	}
}

func (r *fakeNotificationRepository) CreateNotification(_ context.Context, notification *entities.Notification) error {
	clone := *notification
	r.notifications[notification.ID.String()] = &clone
	return nil
}

func (r *fakeNotificationRepository) GetNotificationByID(_ context.Context, id string) (*entities.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return notification, nil
}

func (r *fakeNotificationRepository) UpdateNotification(_ context.Context, notification *entities.Notification) error {
	clone := *notification
	r.notifications[notification.ID.String()] = &clone
	return nil
}

func (r *fakeNotificationRepository) DeleteNotification(_ context.Context, id string) error {
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepository) GetNotificationsByUser(_ context.Context, userID string, status string) ([]*entities.Notification, error) {
	var out []*entities.Notification
	for _, notification := range r.notifications {
		item, ok := r.pantryItems[notification.PantryItemID.String()]
		if !ok || item.UserID.String() != userID {
			continue
		}
		if status != "" && notification.Status != status {
			continue
		}
		out = append(out, notification)
	}
	return out, nil
}

func (r *fakeNotificationRepository) GetDueNotifications(_ context.Context, userID string, now time.Time) ([]*entities.Notification, error) {
	var out []*entities.Notification
	for _, notification := range r.notifications {
		item, ok := r.pantryItems[notification.PantryItemID.String()]
		if !ok || item.UserID.String() != userID {
			continue
		}
		if notification.Status != domain.NotificationStatusPending || notification.ScheduledFor.After(now) {
			continue
		}
		out = append(out, notification)
	}
	return out, nil
}

func (r *fakeNotificationRepository) FindPendingByPantryItem(_ context.Context, pantryItemID string) (*entities.Notification, error) {
	for _, notification := range r.notifications {
		if notification.PantryItemID.String() == pantryItemID && notification.Status == domain.NotificationStatusPending {
			return notification, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepository) GetPantryItemsWithExpiry(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.pantryItems {
		if item.UserID.String() == userID && item.ExpirationDate != nil {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	item, ok := r.pantryItems[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
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

func timePtr(t time.Time) *time.Time { return &t }

func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func setupScheduler(t *testing.T) (*fakeNotificationRepository, *fakeUserRepository, *notificationService, *entities.User) {
	t.Helper()

	notificationRepo := newFakeNotificationRepository()
	userRepo := newFakeUserRepository()

	owner := &entities.User{ID: uuid.New(), Email: "demo@smartgrocery.app"}
	userRepo.users[owner.ID.String()] = owner

	service := &notificationService{
		notificationRepository: notificationRepo,
		userRepository:         userRepo,
		now:                    fixedNow,
	}
	return notificationRepo, userRepo, service, owner
}

func TestAutoScheduleCreatesForFutureNotifyDates(t *testing.T) {
	notificationRepo, _, service, owner := setupScheduler(t)

	item := &entities.PantryItem{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Name:           "Milk",
		ExpirationDate: timePtr(fixedNow().AddDate(0, 0, 5)),
	}
	notificationRepo.pantryItems[item.ID.String()] = item

	created, err := service.AutoSchedule(context.Background(), owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	pending, err := notificationRepo.FindPendingByPantryItem(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, fixedNow().AddDate(0, 0, 2), pending.ScheduledFor)
}

func TestAutoScheduleIsIdempotent(t *testing.T) {
	notificationRepo, _, service, owner := setupScheduler(t)

	item := &entities.PantryItem{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Name:           "Milk",
		ExpirationDate: timePtr(fixedNow().AddDate(0, 0, 5)),
	}
	notificationRepo.pantryItems[item.ID.String()] = item

	first, err := service.AutoSchedule(context.Background(), owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := service.AutoSchedule(context.Background(), owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, second)
	assert.Len(t, notificationRepo.notifications, 1)
}

func TestAutoScheduleSkipsPastNotifyDates(t *testing.T) {
	notificationRepo, _, service, owner := setupScheduler(t)

	// Expires tomorrow with a 3 day window, so the notify date already passed.
	item := &entities.PantryItem{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Name:           "Chicken",
		ExpirationDate: timePtr(fixedNow().AddDate(0, 0, 1)),
	}
	notificationRepo.pantryItems[item.ID.String()] = item

	created, err := service.AutoSchedule(context.Background(), owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Empty(t, notificationRepo.notifications)
}

func TestAutoScheduleHonorsUserReminderWindow(t *testing.T) {
	notificationRepo, _, service, owner := setupScheduler(t)
	window := 7
	owner.ReminderWindowDays = &window

	item := &entities.PantryItem{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Name:           "Cheese",
		ExpirationDate: timePtr(fixedNow().AddDate(0, 0, 10)),
	}
	notificationRepo.pantryItems[item.ID.String()] = item

	created, err := service.AutoSchedule(context.Background(), owner.ID.String())
	require.NoError(t, err)
	require.Equal(t, 1, created)

	pending, err := notificationRepo.FindPendingByPantryItem(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, fixedNow().AddDate(0, 0, 3), pending.ScheduledFor)
}

func TestAutoScheduleUnknownUser(t *testing.T) {
	_, _, service, _ := setupScheduler(t)

	_, err := service.AutoSchedule(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMarkSentSetsTimestamp(t *testing.T) {
	notificationRepo, _, service, owner := setupScheduler(t)

	item := &entities.PantryItem{ID: uuid.New(), UserID: owner.ID, Name: "Bread"}
	notificationRepo.pantryItems[item.ID.String()] = item

	notification := &entities.Notification{
		ID:           uuid.New(),
		PantryItemID: item.ID,
		ScheduledFor: fixedNow().AddDate(0, 0, -1),
		Status:       domain.NotificationStatusPending,
	}
	require.NoError(t, notificationRepo.CreateNotification(context.Background(), notification))

	res, err := service.MarkSent(context.Background(), notification.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationStatusSent, res.Status)
	require.NotNil(t, res.SentAt)
	assert.Equal(t, fixedNow(), *res.SentAt)
}

func TestCancelNotification(t *testing.T) {
	notificationRepo, _, service, owner := setupScheduler(t)

	item := &entities.PantryItem{ID: uuid.New(), UserID: owner.ID, Name: "Bread"}
	notificationRepo.pantryItems[item.ID.String()] = item

	notification := &entities.Notification{
		ID:           uuid.New(),
		PantryItemID: item.ID,
		ScheduledFor: fixedNow().AddDate(0, 0, 1),
		Status:       domain.NotificationStatusPending,
	}
	require.NoError(t, notificationRepo.CreateNotification(context.Background(), notification))

	res, err := service.Cancel(context.Background(), notification.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationStatusCancelled, res.Status)
	assert.Nil(t, res.SentAt)

	// A cancelled reminder no longer blocks rescheduling.
	_, err = notificationRepo.FindPendingByPantryItem(context.Background(), item.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetNotificationByIDNotFound(t *testing.T) {
	_, _, service, _ := setupScheduler(t)

	_, err := service.GetNotificationByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestCreateNotificationValidatesPantryItem(t *testing.T) {
	_, _, service, _ := setupScheduler(t)

	_, err := service.CreateNotification(context.Background(), domain.CreateNotificationRequest{
		PantryItemID: uuid.NewString(),
		ScheduledFor: fixedNow().Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestCreateNotificationRejectsBadTimestamp(t *testing.T) {
	notificationRepo, _, service, owner := setupScheduler(t)

	item := &entities.PantryItem{ID: uuid.New(), UserID: owner.ID, Name: "Milk"}
	notificationRepo.pantryItems[item.ID.String()] = item

	_, err := service.CreateNotification(context.Background(), domain.CreateNotificationRequest{
		PantryItemID: item.ID.String(),
		ScheduledFor: "tomorrow-ish",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidScheduledFor)
}
