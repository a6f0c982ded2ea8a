package handlers

import (
	"fmt"

	"smart-grocery-api/domain"
	"smart-grocery-api/internal/api/presenters"
	"smart-grocery-api/pkg/notification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	NotificationHandler interface {
		CreateNotification(c *fiber.Ctx) error
		GetNotifications(c *fiber.Ctx) error
		GetDueNotifications(c *fiber.Ctx) error
		GetNotificationByID(c *fiber.Ctx) error
		UpdateNotification(c *fiber.Ctx) error
		DeleteNotification(c *fiber.Ctx) error
		AutoSchedule(c *fiber.Ctx) error
		MarkSent(c *fiber.Ctx) error
		Cancel(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) CreateNotification(c *fiber.Ctx) error {
	req := new(domain.CreateNotificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateNotification, err)
	}

	res, err := h.notificationService.CreateNotification(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedCreateNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateNotification)
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetNotifications, err)
	}

	res, err := h.notificationService.GetNotifications(c.Context(), userID, c.Query("status"))
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) GetDueNotifications(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetNotifications, err)
	}

	res, err := h.notificationService.GetDueNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) GetNotificationByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, domain.ErrParseUUID)
	}

	res, err := h.notificationService.GetNotificationByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) UpdateNotification(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotification, domain.ErrParseUUID)
	}

	req := new(domain.UpdateNotificationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotification, err)
	}

	res, err := h.notificationService.UpdateNotification(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateNotification)
}

func (h *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteNotification, domain.ErrParseUUID)
	}

	if err := h.notificationService.DeleteNotification(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNotification)
}

func (h *notificationHandler) AutoSchedule(c *fiber.Ctx) error {
	req := new(domain.AutoScheduleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAutoSchedule, err)
	}

	created, err := h.notificationService.AutoSchedule(c.Context(), req.UserID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAutoSchedule, err)
	}

	message := fmt.Sprintf("Scheduled %d new notifications", created)
	return presenters.SuccessResponse(c, fiber.Map{"created": created}, fiber.StatusOK, message)
}

func (h *notificationHandler) MarkSent(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotification, domain.ErrParseUUID)
	}

	res, err := h.notificationService.MarkSent(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateNotification)
}

func (h *notificationHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotification, domain.ErrParseUUID)
	}

	res, err := h.notificationService.Cancel(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateNotification)
}
