package domain

import (
	"errors"
	"time"
)

const (
	NotificationStatusPending   = "pending"
	NotificationStatusSent      = "sent"
	NotificationStatusCancelled = "cancelled"
)

var (
	MessageSuccessCreateNotification = "notification created successfully"
	MessageSuccessUpdateNotification = "notification updated successfully"
	MessageSuccessDeleteNotification = "notification deleted successfully"
	MessageSuccessGetNotifications   = "notifications retrieved successfully"

	MessageFailedCreateNotification = "failed to create notification"
	MessageFailedUpdateNotification = "failed to update notification"
	MessageFailedDeleteNotification = "failed to delete notification"
	MessageFailedGetNotifications   = "failed to retrieve notifications"
	MessageFailedAutoSchedule       = "failed to auto-schedule notifications"

	ErrNotificationNotFound      = errors.New("notification not found")
	ErrInvalidNotificationStatus = errors.New("invalid notification status")
	ErrInvalidScheduledFor       = errors.New("invalid scheduled_for timestamp")
)

type (
	CreateNotificationRequest struct {
		PantryItemID string `json:"pantry_item_id" validate:"required,uuid"`
		ScheduledFor string `json:"scheduled_for" validate:"required"`
		Status       string `json:"status" validate:"omitempty,oneof=pending sent cancelled"`
	}

	UpdateNotificationRequest struct {
		ScheduledFor string `json:"scheduled_for" validate:"omitempty"`
		Status       string `json:"status" validate:"omitempty,oneof=pending sent cancelled"`
	}

	AutoScheduleRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	}

	NotificationResponse struct {
		ID             string     `json:"id"`
		PantryItemID   string     `json:"pantry_item_id"`
		PantryItemName string     `json:"pantry_item_name,omitempty"`
		ExpirationDate *time.Time `json:"expiration_date,omitempty"`
		ScheduledFor   time.Time  `json:"scheduled_for"`
		Status         string     `json:"status"`
		SentAt         *time.Time `json:"sent_at,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}
)
