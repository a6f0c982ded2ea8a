package seed

import (
	"errors"
	"fmt"
	"time"

	"smart-grocery-api/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }

func daysFromNow(days int) *time.Time {
	t := time.Now().AddDate(0, 0, days)
	return &t
}

// Seed loads a demo user with a stocked pantry, a shopping list, saved meal
// ideas, and reminders for the items already close to expiring. Running it
// against a database that already holds the demo user is a no-op.
func Seed(db *gorm.DB) error {
	var existing entities.User
	err := db.Where("email = ?", "demo@smartgrocery.app").First(&existing).Error
	if err == nil {
		fmt.Println("Demo data already present, skipping seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	reminderWindow := 3
	user := &entities.User{
		ID:                 uuid.New(),
		Email:              "demo@smartgrocery.app",
		Name:               "Demo User",
		Timezone:           "America/New_York",
		DietaryTags:        "vegetarian,low-sodium",
		ReminderWindowDays: &reminderWindow,
		NotifyEmail:        true,
		NotifyExpiring:     true,
		NotifyLowStock:     true,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	pantryItems := []*entities.PantryItem{
		{ID: uuid.New(), UserID: user.ID, Name: "Milk", Quantity: floatPtr(1), Unit: "gallon", Category: "Dairy", ExpirationDate: daysFromNow(5), Source: "manual"},
		{ID: uuid.New(), UserID: user.ID, Name: "Eggs", Quantity: floatPtr(12), Unit: "pcs", Category: "Dairy", ExpirationDate: daysFromNow(14), Source: "manual"},
		{ID: uuid.New(), UserID: user.ID, Name: "Bread", Quantity: floatPtr(1), Unit: "loaf", Category: "Bakery", ExpirationDate: daysFromNow(3), Source: "manual"},
		{ID: uuid.New(), UserID: user.ID, Name: "Chicken Breast", Quantity: floatPtr(2), Unit: "lbs", Category: "Meat", ExpirationDate: daysFromNow(2), Source: "manual"},
		{ID: uuid.New(), UserID: user.ID, Name: "Rice", Quantity: floatPtr(5), Unit: "lbs", Category: "Grains", Source: "manual"},
		{ID: uuid.New(), UserID: user.ID, Name: "Tomatoes", Quantity: floatPtr(4), Unit: "pcs", Category: "Produce", ExpirationDate: daysFromNow(4), Source: "manual"},
		{ID: uuid.New(), UserID: user.ID, Name: "Onions", Quantity: floatPtr(3), Unit: "pcs", Category: "Produce", Source: "manual"},
		{ID: uuid.New(), UserID: user.ID, Name: "Butter", Quantity: floatPtr(1), Unit: "stick", Category: "Dairy", ExpirationDate: daysFromNow(30), Source: "manual"},
	}
	for _, item := range pantryItems {
		if err := db.Create(item).Error; err != nil {
			return err
		}
	}

	list := &entities.GroceryList{
		ID:     uuid.New(),
		UserID: user.ID,
		Title:  "Weekly Shopping",
		Status: "active",
	}
	if err := db.Create(list).Error; err != nil {
		return err
	}

	listItems := []*entities.GroceryListItem{
		{ID: uuid.New(), GroceryListID: list.ID, Name: "Pasta", Quantity: floatPtr(2), Unit: "boxes", Category: "Grains"},
		{ID: uuid.New(), GroceryListID: list.ID, Name: "Olive Oil", Quantity: floatPtr(1), Unit: "bottle", Category: "Condiments"},
		{ID: uuid.New(), GroceryListID: list.ID, Name: "Garlic", Quantity: floatPtr(1), Unit: "head", Category: "Produce"},
	}
	for _, item := range listItems {
		if err := db.Create(item).Error; err != nil {
			return err
		}
	}

	mealIdeas := []*entities.MealIdea{
		{ID: uuid.New(), UserID: user.ID, Title: "Chicken Stir Fry", Notes: "Use chicken breast, rice, and vegetables. Season with soy sauce and ginger."},
		{ID: uuid.New(), UserID: user.ID, Title: "Veggie Omelette", Notes: "Eggs with tomatoes, onions, and cheese. Serve with toast."},
	}
	for _, idea := range mealIdeas {
		if err := db.Create(idea).Error; err != nil {
			return err
		}
	}

	cutoff := time.Now().AddDate(0, 0, 3)
	scheduled := 0
	for _, item := range pantryItems {
		if item.ExpirationDate == nil || item.ExpirationDate.After(cutoff) {
			continue
		}
		notification := &entities.Notification{
			ID:           uuid.New(),
			PantryItemID: item.ID,
			ScheduledFor: time.Now().AddDate(0, 0, 1),
			Status:       "pending",
		}
		if err := db.Create(notification).Error; err != nil {
			return err
		}
		scheduled++
	}

	fmt.Printf("Seeded demo user with %d pantry items and %d notifications\n", len(pantryItems), scheduled)
	return nil
}
