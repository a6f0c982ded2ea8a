package config

import (
	"os"
	"time"

	"smart-grocery-api/internal/api/handlers"
	"smart-grocery-api/internal/api/routes"
	"smart-grocery-api/internal/middleware"
	"smart-grocery-api/internal/utils"
	"smart-grocery-api/pkg/grocery"
	"smart-grocery-api/pkg/meal"
	"smart-grocery-api/pkg/notification"
	"smart-grocery-api/pkg/pantry"
	"smart-grocery-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Suggestion generator, nil when OpenAI is not configured
	var generator meal.SuggestionGenerator
	if apiKey := utils.GetConfig("OPENAI_API_KEY"); apiKey != "" {
		generator = meal.NewOpenAIGenerator(apiKey, utils.GetConfig("OPENAI_MODEL"))
	}

	// Service
	userService := user.NewUserService(userRepository)
	pantryService := pantry.NewPantryService(pantryRepository, userRepository, notificationRepository)
	notificationService := notification.NewNotificationService(notificationRepository, userRepository)
	groceryService := grocery.NewGroceryService(groceryRepository, pantryRepository, userRepository)
	mealService := meal.NewMealService(mealRepository, pantryRepository, userRepository, generator)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		PantryHandler:       pantryHandler,
		GroceryHandler:      groceryHandler,
		MealHandler:         mealHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
