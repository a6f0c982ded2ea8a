package handlers

import (
	"errors"

	"smart-grocery-api/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// statusCode maps domain errors onto HTTP statuses so every handler reports
// the same status for the same failure.
func statusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrGroceryListNotFound),
		errors.Is(err, domain.ErrGroceryListItemNotFound),
		errors.Is(err, domain.ErrMealIdeaNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailRegistered):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrUserIDRequired),
		errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrInvalidUserInput),
		errors.Is(err, domain.ErrInvalidExpirationDate),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidListStatus),
		errors.Is(err, domain.ErrInvalidScheduledFor):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// requireUserID reads and validates the userId query parameter.
func requireUserID(c *fiber.Ctx) (string, error) {
	raw := c.Query("userId")
	if raw == "" {
		return "", domain.ErrUserIDRequired
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", domain.ErrParseUUID
	}
	return raw, nil
}
