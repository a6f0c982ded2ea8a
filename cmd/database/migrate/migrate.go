package migration

import (
	"fmt"
	"log"

	"smart-grocery-api/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryList{}, &entities.GroceryListItem{}); err != nil {
		log.Fatalf("Error migrating grocery list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealIdea{}); err != nil {
		log.Fatalf("Error migrating meal idea database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
