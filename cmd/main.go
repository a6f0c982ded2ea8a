package main

import (
	"log"

	"smart-grocery-api/cmd/config"
	migration "smart-grocery-api/cmd/database/migrate"
	"smart-grocery-api/cmd/database/seed"
	"smart-grocery-api/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed migrating database: %v", err)
	}

	if utils.GetConfig("SEED_DEMO_DATA") == "true" {
		if err := seed.Seed(db); err != nil {
			log.Fatalf("failed seeding database: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed building application: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
