package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateUser = "user created successfully"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"
	MessageSuccessGetUsers   = "users retrieved successfully"

	MessageFailedCreateUser = "failed to create user"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"
	MessageFailedGetUsers   = "failed to retrieve users"

	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidUserInput = errors.New("invalid user input")
)

type (
	CreateUserRequest struct {
		Email              string `json:"email" validate:"required,email"`
		Name               string `json:"name" validate:"omitempty,max=100"`
		Timezone           string `json:"timezone" validate:"omitempty,max=50"`
		DietaryTags        string `json:"dietary_tags" validate:"omitempty,max=255"`
		Allergies          string `json:"allergies" validate:"omitempty,max=500"`
		ReminderWindowDays *int   `json:"reminder_window_days" validate:"omitempty,min=1,max=30"`
		NotifyEmail        *bool  `json:"notify_email"`
		NotifyPush         *bool  `json:"notify_push"`
		NotifyExpiring     *bool  `json:"notify_expiring"`
		NotifyLowStock     *bool  `json:"notify_low_stock"`
	}

	UpdateUserRequest struct {
		Email              string `json:"email" validate:"omitempty,email"`
		Name               string `json:"name" validate:"omitempty,max=100"`
		Timezone           string `json:"timezone" validate:"omitempty,max=50"`
		DietaryTags        string `json:"dietary_tags" validate:"omitempty,max=255"`
		Allergies          string `json:"allergies" validate:"omitempty,max=500"`
		ReminderWindowDays *int   `json:"reminder_window_days" validate:"omitempty,min=1,max=30"`
		NotifyEmail        *bool  `json:"notify_email"`
		NotifyPush         *bool  `json:"notify_push"`
		NotifyExpiring     *bool  `json:"notify_expiring"`
		NotifyLowStock     *bool  `json:"notify_low_stock"`
	}

	UserResponse struct {
		ID                 string    `json:"id"`
		Email              string    `json:"email"`
		Name               string    `json:"name,omitempty"`
		Timezone           string    `json:"timezone,omitempty"`
		DietaryTags        string    `json:"dietary_tags,omitempty"`
		Allergies          string    `json:"allergies,omitempty"`
		ReminderWindowDays *int      `json:"reminder_window_days,omitempty"`
		NotifyEmail        bool      `json:"notify_email"`
		NotifyPush         bool      `json:"notify_push"`
		NotifyExpiring     bool      `json:"notify_expiring"`
		NotifyLowStock     bool      `json:"notify_low_stock"`
		CreatedAt          time.Time `json:"created_at"`
	}
)
