package meal

import (
	"context"
	"errors"
	"log"

	"smart-grocery-api/domain"
	"smart-grocery-api/entities"
	"smart-grocery-api/pkg/pantry"
	"smart-grocery-api/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		SuggestMeals(ctx context.Context, req domain.SuggestMealsRequest) (domain.SuggestMealsResponse, error)
		CreateMealIdea(ctx context.Context, req domain.CreateMealIdeaRequest) (domain.MealIdeaResponse, error)
		GetMealIdeaByID(ctx context.Context, id string) (domain.MealIdeaResponse, error)
		GetMealIdeas(ctx context.Context, userID string) ([]domain.MealIdeaResponse, error)
		UpdateMealIdea(ctx context.Context, id string, req domain.UpdateMealIdeaRequest) (domain.MealIdeaResponse, error)
		DeleteMealIdea(ctx context.Context, id string) error
	}

	mealService struct {
		mealRepository   MealRepository
		pantryRepository pantry.PantryRepository
		userRepository   user.UserRepository
		generator        SuggestionGenerator
	}
)

// NewMealService wires the meal idea store with the suggestion pipeline.
// A nil generator disables the AI path, every suggestion then comes from
// the deterministic fallback.
func NewMealService(
	mealRepository MealRepository,
	pantryRepository pantry.PantryRepository,
	userRepository user.UserRepository,
	generator SuggestionGenerator,
) MealService {
	return &mealService{
		mealRepository:   mealRepository,
		pantryRepository: pantryRepository,
		userRepository:   userRepository,
		generator:        generator,
	}
}

func (s *mealService) SuggestMeals(ctx context.Context, req domain.SuggestMealsRequest) (domain.SuggestMealsResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SuggestMealsResponse{}, domain.ErrUserNotFound
		}
		return domain.SuggestMealsResponse{}, err
	}

	items, err := s.pantryRepository.GetItemsInStock(ctx, req.UserID)
	if err != nil {
		return domain.SuggestMealsResponse{}, err
	}

	if len(items) == 0 {
		return domain.SuggestMealsResponse{
			Suggestions: []domain.MealSuggestion{{
				Title:        "Empty Pantry",
				Ingredients:  []domain.MealIngredient{},
				Instructions: "Add items to your pantry to get personalized meal suggestions!",
				CookTime:     "N/A",
				Difficulty:   "N/A",
			}},
			UsingAI: false,
		}, nil
	}

	ingredients := make([]string, 0, len(items))
	for _, item := range items {
		ingredients = append(ingredients, item.Name)
	}

	if s.generator == nil {
		return domain.SuggestMealsResponse{
			Suggestions: GenerateFallbackSuggestions(ingredients, owner.DietaryTags),
			UsingAI:     false,
		}, nil
	}

	suggestions, err := s.generator.Generate(ctx, ingredients, owner.DietaryTags, owner.Allergies, req.AdditionalPreferences)
	if err != nil {
		log.Printf("Suggestion generator error, falling back: %v", err)
		return domain.SuggestMealsResponse{
			Suggestions: GenerateFallbackSuggestions(ingredients, owner.DietaryTags),
			UsingAI:     false,
		}, nil
	}

	return domain.SuggestMealsResponse{Suggestions: suggestions, UsingAI: true}, nil
}

func (s *mealService) CreateMealIdea(ctx context.Context, req domain.CreateMealIdeaRequest) (domain.MealIdeaResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealIdeaResponse{}, domain.ErrUserNotFound
		}
		return domain.MealIdeaResponse{}, err
	}

	idea := &entities.MealIdea{
		ID:     uuid.New(),
		UserID: owner.ID,
		Title:  req.Title,
		Notes:  req.Notes,
	}

	if err := s.mealRepository.CreateMealIdea(ctx, idea); err != nil {
		return domain.MealIdeaResponse{}, err
	}

	return toMealIdeaResponse(idea), nil
}

func (s *mealService) GetMealIdeaByID(ctx context.Context, id string) (domain.MealIdeaResponse, error) {
	idea, err := s.mealRepository.GetMealIdeaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealIdeaResponse{}, domain.ErrMealIdeaNotFound
		}
		return domain.MealIdeaResponse{}, err
	}
	return toMealIdeaResponse(idea), nil
}

func (s *mealService) GetMealIdeas(ctx context.Context, userID string) ([]domain.MealIdeaResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	ideas, err := s.mealRepository.GetMealIdeas(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealIdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		response = append(response, toMealIdeaResponse(idea))
	}
	return response, nil
}

func (s *mealService) UpdateMealIdea(ctx context.Context, id string, req domain.UpdateMealIdeaRequest) (domain.MealIdeaResponse, error) {
	idea, err := s.mealRepository.GetMealIdeaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealIdeaResponse{}, domain.ErrMealIdeaNotFound
		}
		return domain.MealIdeaResponse{}, err
	}

	if req.Title != "" {
		idea.Title = req.Title
	}
	if req.Notes != "" {
		idea.Notes = req.Notes
	}

	if err := s.mealRepository.UpdateMealIdea(ctx, idea); err != nil {
		return domain.MealIdeaResponse{}, err
	}

	return toMealIdeaResponse(idea), nil
}

func (s *mealService) DeleteMealIdea(ctx context.Context, id string) error {
	if _, err := s.mealRepository.GetMealIdeaByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealIdeaNotFound
		}
		return err
	}
	return s.mealRepository.DeleteMealIdea(ctx, id)
}

func toMealIdeaResponse(idea *entities.MealIdea) domain.MealIdeaResponse {
	return domain.MealIdeaResponse{
		ID:        idea.ID.String(),
		UserID:    idea.UserID.String(),
		Title:     idea.Title,
		Notes:     idea.Notes,
		CreatedAt: idea.CreatedAt,
	}
}
