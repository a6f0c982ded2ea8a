package meal

import (
	"context"

	"smart-grocery-api/entities"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMealIdea(ctx context.Context, idea *entities.MealIdea) error
		GetMealIdeaByID(ctx context.Context, id string) (*entities.MealIdea, error)
		GetMealIdeas(ctx context.Context, userID string) ([]*entities.MealIdea, error)
		UpdateMealIdea(ctx context.Context, idea *entities.MealIdea) error
		DeleteMealIdea(ctx context.Context, id string) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMealIdea(ctx context.Context, idea *entities.MealIdea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

func (r *mealRepository) GetMealIdeaByID(ctx context.Context, id string) (*entities.MealIdea, error) {
	var idea entities.MealIdea
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&idea).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *mealRepository) GetMealIdeas(ctx context.Context, userID string) ([]*entities.MealIdea, error) {
	var ideas []*entities.MealIdea
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *mealRepository) UpdateMealIdea(ctx context.Context, idea *entities.MealIdea) error {
	return r.db.WithContext(ctx).Save(idea).Error
}

func (r *mealRepository) DeleteMealIdea(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.MealIdea{}, "id = ?", id).Error
}
