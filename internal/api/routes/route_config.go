package routes

import (
	"smart-grocery-api/internal/api/handlers"
	"smart-grocery-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	PantryHandler       handlers.PantryHandler
	GroceryHandler      handlers.GroceryHandler
	MealHandler         handlers.MealHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Pantry()
	c.GroceryLists()
	c.Meals()
	c.Notifications()
	c.Health()
}

func (c *Config) Users() {
	users := c.App.Group("/api/users")
	{
		users.Post("", c.UserHandler.CreateUser)
		users.Get("", c.UserHandler.GetUsers)
		users.Get("/by-email", c.UserHandler.GetUserByEmail)
		users.Get("/:id", c.UserHandler.GetUserByID)
		users.Put("/:id", c.UserHandler.UpdateUser)
		users.Delete("/:id", c.UserHandler.DeleteUser)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/pantry")
	{
		pantry.Post("", c.PantryHandler.AddPantryItem)
		pantry.Get("", c.PantryHandler.GetPantryItems)

		// Fixed paths must register before /:id.
		pantry.Get("/expiring", c.PantryHandler.GetExpiringItems)
		pantry.Get("/low-stock", c.PantryHandler.GetLowStockItems)
		pantry.Get("/categories", c.PantryHandler.GetCategories)

		pantry.Get("/:id", c.PantryHandler.GetPantryItemByID)
		pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
		pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
	}
}

func (c *Config) GroceryLists() {
	lists := c.App.Group("/api/grocery-lists")
	{
		lists.Post("", c.GroceryHandler.CreateGroceryList)
		lists.Get("", c.GroceryHandler.GetGroceryLists)
		lists.Get("/:id", c.GroceryHandler.GetGroceryListByID)
		lists.Put("/:id", c.GroceryHandler.UpdateGroceryList)
		lists.Delete("/:id", c.GroceryHandler.DeleteGroceryList)

		lists.Post("/:id/items", c.GroceryHandler.AddListItem)
		lists.Put("/:id/items/:itemId", c.GroceryHandler.UpdateListItem)
		lists.Delete("/:id/items/:itemId", c.GroceryHandler.DeleteListItem)

		lists.Post("/:id/add-expiring", c.GroceryHandler.AddExpiringItems)
		lists.Post("/:id/add-low-stock", c.GroceryHandler.AddLowStockItems)
	}
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/meals")
	{
		meals.Post("/suggest", c.MealHandler.SuggestMeals)
		meals.Post("", c.MealHandler.CreateMealIdea)
		meals.Get("", c.MealHandler.GetMealIdeas)
		meals.Get("/:id", c.MealHandler.GetMealIdeaByID)
		meals.Put("/:id", c.MealHandler.UpdateMealIdea)
		meals.Delete("/:id", c.MealHandler.DeleteMealIdea)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/notifications")
	{
		notifications.Post("", c.NotificationHandler.CreateNotification)
		notifications.Get("", c.NotificationHandler.GetNotifications)
		notifications.Get("/pending", c.NotificationHandler.GetDueNotifications)
		notifications.Post("/auto-schedule", c.NotificationHandler.AutoSchedule)
		notifications.Get("/:id", c.NotificationHandler.GetNotificationByID)
		notifications.Put("/:id", c.NotificationHandler.UpdateNotification)
		notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
		notifications.Put("/:id/mark-sent", c.NotificationHandler.MarkSent)
		notifications.Put("/:id/cancel", c.NotificationHandler.Cancel)
	}
}

func (c *Config) Health() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
