package user

import (
	"context"
	"errors"

	"smart-grocery-api/domain"
	"smart-grocery-api/entities"

	"gorm.io/gorm"
)

// DefaultReminderWindowDays is used whenever a user has no reminder window
// configured.
const DefaultReminderWindowDays = 3

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		GetUserByID(ctx context.Context, id string) (domain.UserResponse, error)
		GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

// ReminderWindow resolves the effective reminder window for a user.
func ReminderWindow(user *entities.User) int {
	if user.ReminderWindowDays != nil && *user.ReminderWindowDays > 0 {
		return *user.ReminderWindowDays
	}
	return DefaultReminderWindowDays
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Email:              req.Email,
		Name:               req.Name,
		Timezone:           req.Timezone,
		DietaryTags:        req.DietaryTags,
		Allergies:          req.Allergies,
		ReminderWindowDays: req.ReminderWindowDays,
		NotifyEmail:        true,
		NotifyExpiring:     true,
		NotifyLowStock:     true,
	}
	if req.NotifyEmail != nil {
		user.NotifyEmail = *req.NotifyEmail
	}
	if req.NotifyPush != nil {
		user.NotifyPush = *req.NotifyPush
	}
	if req.NotifyExpiring != nil {
		user.NotifyExpiring = *req.NotifyExpiring
	}
	if req.NotifyLowStock != nil {
		user.NotifyLowStock = *req.NotifyLowStock
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return response, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
			return domain.UserResponse{}, domain.ErrEmailRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Timezone != "" {
		user.Timezone = req.Timezone
	}
	if req.DietaryTags != "" {
		user.DietaryTags = req.DietaryTags
	}
	if req.Allergies != "" {
		user.Allergies = req.Allergies
	}
	if req.ReminderWindowDays != nil {
		user.ReminderWindowDays = req.ReminderWindowDays
	}
	if req.NotifyEmail != nil {
		user.NotifyEmail = *req.NotifyEmail
	}
	if req.NotifyPush != nil {
		user.NotifyPush = *req.NotifyPush
	}
	if req.NotifyExpiring != nil {
		user.NotifyExpiring = *req.NotifyExpiring
	}
	if req.NotifyLowStock != nil {
		user.NotifyLowStock = *req.NotifyLowStock
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:                 user.ID.String(),
		Email:              user.Email,
		Name:               user.Name,
		Timezone:           user.Timezone,
		DietaryTags:        user.DietaryTags,
		Allergies:          user.Allergies,
		ReminderWindowDays: user.ReminderWindowDays,
		NotifyEmail:        user.NotifyEmail,
		NotifyPush:         user.NotifyPush,
		NotifyExpiring:     user.NotifyExpiring,
		NotifyLowStock:     user.NotifyLowStock,
		CreatedAt:          user.CreatedAt,
	}
}
