package handlers

import (
	"smart-grocery-api/domain"
	"smart-grocery-api/internal/api/presenters"
	"smart-grocery-api/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	MealHandler interface {
		SuggestMeals(c *fiber.Ctx) error
		CreateMealIdea(c *fiber.Ctx) error
		GetMealIdeas(c *fiber.Ctx) error
		GetMealIdeaByID(c *fiber.Ctx) error
		UpdateMealIdea(c *fiber.Ctx) error
		DeleteMealIdea(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) SuggestMeals(c *fiber.Ctx) error {
	req := new(domain.SuggestMealsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestMeals, err)
	}

	res, err := h.mealService.SuggestMeals(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedSuggestMeals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestMeals)
}

func (h *mealHandler) CreateMealIdea(c *fiber.Ctx) error {
	req := new(domain.CreateMealIdeaRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMealIdea, err)
	}

	res, err := h.mealService.CreateMealIdea(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedSaveMealIdea, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveMealIdea)
}

func (h *mealHandler) GetMealIdeas(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetMealIdeas, err)
	}

	res, err := h.mealService.GetMealIdeas(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetMealIdeas, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealIdeas)
}

func (h *mealHandler) GetMealIdeaByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealIdeas, domain.ErrParseUUID)
	}

	res, err := h.mealService.GetMealIdeaByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetMealIdeas, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealIdeas)
}

func (h *mealHandler) UpdateMealIdea(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealIdea, domain.ErrParseUUID)
	}

	req := new(domain.UpdateMealIdeaRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealIdea, err)
	}

	res, err := h.mealService.UpdateMealIdea(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedUpdateMealIdea, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMealIdea)
}

func (h *mealHandler) DeleteMealIdea(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealIdea, domain.ErrParseUUID)
	}

	if err := h.mealService.DeleteMealIdea(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteMealIdea, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealIdea)
}
