package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveMealIdea   = "meal idea saved successfully"
	MessageSuccessUpdateMealIdea = "meal idea updated successfully"
	MessageSuccessDeleteMealIdea = "meal idea deleted successfully"
	MessageSuccessGetMealIdeas   = "meal ideas retrieved successfully"
	MessageSuccessSuggestMeals   = "meal suggestions generated successfully"

	MessageFailedSaveMealIdea   = "failed to save meal idea"
	MessageFailedUpdateMealIdea = "failed to update meal idea"
	MessageFailedDeleteMealIdea = "failed to delete meal idea"
	MessageFailedGetMealIdeas   = "failed to retrieve meal ideas"
	MessageFailedSuggestMeals   = "failed to generate meal suggestions"

	ErrMealIdeaNotFound   = errors.New("meal idea not found")
	ErrSuggestionFailed   = errors.New("suggestion service returned no results")
	ErrMalformedAIPayload = errors.New("could not parse AI response payload")
)

type (
	CreateMealIdeaRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Title  string `json:"title" validate:"required,max=255"`
		Notes  string `json:"notes" validate:"omitempty,max=2000"`
	}

	UpdateMealIdeaRequest struct {
		Title string `json:"title" validate:"omitempty,max=255"`
		Notes string `json:"notes" validate:"omitempty,max=2000"`
	}

	MealIdeaResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		Title     string    `json:"title"`
		Notes     string    `json:"notes,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	SuggestMealsRequest struct {
		UserID                string `json:"user_id" validate:"required,uuid"`
		AdditionalPreferences string `json:"additional_preferences" validate:"omitempty,max=500"`
	}

	MealIngredient struct {
		Name   string `json:"name"`
		Amount string `json:"amount,omitempty"`
		Unit   string `json:"unit,omitempty"`
	}

	MealNutrition struct {
		Calories string `json:"calories,omitempty"`
		Protein  string `json:"protein,omitempty"`
		Carbs    string `json:"carbs,omitempty"`
		Fat      string `json:"fat,omitempty"`
	}

	MealSuggestion struct {
		Title         string           `json:"title"`
		Ingredients   []MealIngredient `json:"ingredients"`
		Instructions  string           `json:"instructions"`
		DetailedSteps []string         `json:"detailed_steps,omitempty"`
		CookTime      string           `json:"cook_time,omitempty"`
		Difficulty    string           `json:"difficulty,omitempty"`
		Servings      string           `json:"servings,omitempty"`
		Tips          string           `json:"tips,omitempty"`
		Nutrition     *MealNutrition   `json:"nutrition,omitempty"`
	}

	SuggestMealsResponse struct {
		Suggestions []MealSuggestion `json:"suggestions"`
		UsingAI     bool             `json:"using_ai"`
	}
)
