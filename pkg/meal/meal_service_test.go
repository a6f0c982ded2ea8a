package meal

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-grocery-api/domain"
	"smart-grocery-api/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMealRepository struct {
	ideas map[string]*entities.MealIdea
}

func (r *fakeMealRepository) CreateMealIdea(_ context.Context, idea *entities.MealIdea) error {
	r.ideas[idea.ID.String()] = idea
	return nil
}

func (r *fakeMealRepository) GetMealIdeaByID(_ context.Context, id string) (*entities.MealIdea, error) {
	idea, ok := r.ideas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return idea, nil
}

func (r *fakeMealRepository) GetMealIdeas(_ context.Context, userID string) ([]*entities.MealIdea, error) {
	var out []*entities.MealIdea
	for _, idea := range r.ideas {
		if idea.UserID.String() == userID {
			out = append(out, idea)
		}
	}
	return out, nil
}

func (r *fakeMealRepository) UpdateMealIdea(_ context.Context, idea *entities.MealIdea) error {
	r.ideas[idea.ID.String()] = idea
	return nil
}

func (r *fakeMealRepository) DeleteMealIdea(_ context.Context, id string) error {
	delete(r.ideas, id)
	return nil
}

type fakePantryRepository struct {
	items map[string]*entities.PantryItem
}

func (r *fakePantryRepository) AddPantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakePantryRepository) UpdatePantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) DeletePantryItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakePantryRepository) GetPantryItems(_ context.Context, userID string, category string) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (r *fakePantryRepository) GetExpiringItems(_ context.Context, userID string, cutoff time.Time) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (r *fakePantryRepository) GetLowStockItems(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	return nil, nil
}

func (r *fakePantryRepository) GetItemsInStock(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if item.Quantity != nil && *item.Quantity <= 0 {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePantryRepository) GetCategories(_ context.Context, userID string) ([]string, error) {
	return nil, nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUsers(_ context.Context) ([]*entities.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeGenerator struct {
	suggestions []domain.MealSuggestion
	err         error
	calls       int
}

func (g *fakeGenerator) Generate(_ context.Context, ingredients []string, dietaryTags string, allergies string, additionalPreferences string) ([]domain.MealSuggestion, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.suggestions, nil
}

func floatPtr(v float64) *float64 { return &v }

func setupMeal(t *testing.T, generator SuggestionGenerator) (*fakePantryRepository, *mealService, *entities.User) {
	t.Helper()

	mealRepo := &fakeMealRepository{ideas: make(map[string]*entities.MealIdea)}
	pantryRepo := &fakePantryRepository{items: make(map[string]*entities.PantryItem)}
	userRepo := &fakeUserRepository{users: make(map[string]*entities.User)}

	owner := &entities.User{ID: uuid.New(), Email: "demo@smartgrocery.app"}
	userRepo.users[owner.ID.String()] = owner

	service := &mealService{
		mealRepository:   mealRepo,
		pantryRepository: pantryRepo,
		userRepository:   userRepo,
		generator:        generator,
	}
	return pantryRepo, service, owner
}

func stockPantry(pantryRepo *fakePantryRepository, owner *entities.User, names ...string) {
	for _, name := range names {
		item := &entities.PantryItem{
			ID:       uuid.New(),
			UserID:   owner.ID,
			Name:     name,
			Quantity: floatPtr(2),
		}
		pantryRepo.items[item.ID.String()] = item
	}
}

func TestSuggestMealsEmptyPantry(t *testing.T) {
	_, service, owner := setupMeal(t, nil)

	res, err := service.SuggestMeals(context.Background(), domain.SuggestMealsRequest{UserID: owner.ID.String()})
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Empty Pantry", res.Suggestions[0].Title)
	assert.False(t, res.UsingAI)
}

func TestSuggestMealsOutOfStockCountsAsEmpty(t *testing.T) {
	pantryRepo, service, owner := setupMeal(t, nil)

	depleted := &entities.PantryItem{
		ID:       uuid.New(),
		UserID:   owner.ID,
		Name:     "Chicken",
		Quantity: floatPtr(0),
	}
	pantryRepo.items[depleted.ID.String()] = depleted

	res, err := service.SuggestMeals(context.Background(), domain.SuggestMealsRequest{UserID: owner.ID.String()})
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Empty Pantry", res.Suggestions[0].Title)
}

func TestSuggestMealsFallbackWithoutGenerator(t *testing.T) {
	pantryRepo, service, owner := setupMeal(t, nil)
	stockPantry(pantryRepo, owner, "Chicken", "Rice", "Tomatoes")

	res, err := service.SuggestMeals(context.Background(), domain.SuggestMealsRequest{UserID: owner.ID.String()})
	require.NoError(t, err)
	assert.False(t, res.UsingAI)
	assert.NotEmpty(t, res.Suggestions)
}

func TestSuggestMealsUsesGenerator(t *testing.T) {
	generator := &fakeGenerator{
		suggestions: []domain.MealSuggestion{{Title: "Coq au Vin", Instructions: "Braise the chicken in wine."}},
	}
	pantryRepo, service, owner := setupMeal(t, generator)
	stockPantry(pantryRepo, owner, "Chicken", "Wine")

	res, err := service.SuggestMeals(context.Background(), domain.SuggestMealsRequest{UserID: owner.ID.String()})
	require.NoError(t, err)
	assert.True(t, res.UsingAI)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Coq au Vin", res.Suggestions[0].Title)
	assert.Equal(t, 1, generator.calls)
}

func TestSuggestMealsFallsBackOnGeneratorError(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("rate limited")}
	pantryRepo, service, owner := setupMeal(t, generator)
	stockPantry(pantryRepo, owner, "Chicken", "Rice", "Tomatoes")

	res, err := service.SuggestMeals(context.Background(), domain.SuggestMealsRequest{UserID: owner.ID.String()})
	require.NoError(t, err)
	assert.False(t, res.UsingAI)
	assert.NotEmpty(t, res.Suggestions)
}

func TestSuggestMealsUnknownUser(t *testing.T) {
	_, service, _ := setupMeal(t, nil)

	_, err := service.SuggestMeals(context.Background(), domain.SuggestMealsRequest{UserID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMealIdeaLifecycle(t *testing.T) {
	_, service, owner := setupMeal(t, nil)

	created, err := service.CreateMealIdea(context.Background(), domain.CreateMealIdeaRequest{
		UserID: owner.ID.String(),
		Title:  "Chicken Stir Fry",
		Notes:  "Season with soy sauce and ginger.",
	})
	require.NoError(t, err)

	updated, err := service.UpdateMealIdea(context.Background(), created.ID, domain.UpdateMealIdeaRequest{
		Notes: "Add ginger and garlic.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Chicken Stir Fry", updated.Title)
	assert.Equal(t, "Add ginger and garlic.", updated.Notes)

	require.NoError(t, service.DeleteMealIdea(context.Background(), created.ID))

	_, err = service.GetMealIdeaByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrMealIdeaNotFound)
}
