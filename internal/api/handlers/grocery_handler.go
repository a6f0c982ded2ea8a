package handlers

import (
	"fmt"
	"strconv"

	"smart-grocery-api/domain"
	"smart-grocery-api/internal/api/presenters"
	"smart-grocery-api/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	GroceryHandler interface {
		CreateGroceryList(c *fiber.Ctx) error
		GetGroceryLists(c *fiber.Ctx) error
		GetGroceryListByID(c *fiber.Ctx) error
		UpdateGroceryList(c *fiber.Ctx) error
		DeleteGroceryList(c *fiber.Ctx) error
		AddListItem(c *fiber.Ctx) error
		UpdateListItem(c *fiber.Ctx) error
		DeleteListItem(c *fiber.Ctx) error
		AddExpiringItems(c *fiber.Ctx) error
		AddLowStockItems(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) CreateGroceryList(c *fiber.Ctx) error {
	req := new(domain.CreateGroceryListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateGroceryList, err)
	}

	res, err := h.groceryService.CreateGroceryList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedCreateGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateGroceryList)
}

func (h *groceryHandler) GetGroceryLists(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetGroceryLists, err)
	}

	res, err := h.groceryService.GetGroceryLists(c.Context(), userID, c.Query("status"))
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetGroceryLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryLists)
}

func (h *groceryHandler) GetGroceryListByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryLists, domain.ErrParseUUID)
	}

	res, err := h.groceryService.GetGroceryListByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetGroceryLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryLists)
}

func (h *groceryHandler) UpdateGroceryList(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryList, domain.ErrParseUUID)
	}

	req := new(domain.UpdateGroceryListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryList, err)
	}

	res, err := h.groceryService.UpdateGroceryList(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGroceryList)
}

func (h *groceryHandler) DeleteGroceryList(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroceryList, domain.ErrParseUUID)
	}

	if err := h.groceryService.DeleteGroceryList(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteGroceryList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryList)
}

func (h *groceryHandler) AddListItem(c *fiber.Ctx) error {
	listID := c.Params("id")
	if _, err := uuid.Parse(listID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, domain.ErrParseUUID)
	}

	req := new(domain.CreateGroceryListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, err)
	}

	res, err := h.groceryService.AddListItem(c.Context(), listID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddListItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddListItem)
}

func (h *groceryHandler) UpdateListItem(c *fiber.Ctx) error {
	listID := c.Params("id")
	itemID := c.Params("itemId")
	if _, err := uuid.Parse(listID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListItem, domain.ErrParseUUID)
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListItem, domain.ErrParseUUID)
	}

	req := new(domain.UpdateGroceryListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListItem, err)
	}

	res, err := h.groceryService.UpdateListItem(c.Context(), listID, itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateListItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateListItem)
}

func (h *groceryHandler) DeleteListItem(c *fiber.Ctx) error {
	listID := c.Params("id")
	itemID := c.Params("itemId")
	if _, err := uuid.Parse(listID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveListItem, domain.ErrParseUUID)
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveListItem, domain.ErrParseUUID)
	}

	if err := h.groceryService.DeleteListItem(c.Context(), listID, itemID); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedRemoveListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveListItem)
}

func (h *groceryHandler) AddExpiringItems(c *fiber.Ctx) error {
	listID := c.Params("id")
	if _, err := uuid.Parse(listID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAutoPopulate, domain.ErrParseUUID)
	}

	days := DefaultExpiringWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAutoPopulate, err)
		}
		days = parsed
	}

	added, err := h.groceryService.AddExpiringItems(c.Context(), listID, days)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAutoPopulate, err)
	}

	message := fmt.Sprintf("Added %d expiring items to list", added)
	return presenters.SuccessResponse(c, fiber.Map{"added": added}, fiber.StatusOK, message)
}

func (h *groceryHandler) AddLowStockItems(c *fiber.Ctx) error {
	listID := c.Params("id")
	if _, err := uuid.Parse(listID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAutoPopulate, domain.ErrParseUUID)
	}

	added, err := h.groceryService.AddLowStockItems(c.Context(), listID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAutoPopulate, err)
	}

	message := fmt.Sprintf("Added %d low stock items to list", added)
	return presenters.SuccessResponse(c, fiber.Map{"added": added}, fiber.StatusOK, message)
}
