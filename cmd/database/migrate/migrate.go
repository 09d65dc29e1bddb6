package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"recipehub/entities"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Occasion{}); err != nil {
		log.Fatalf("Error migrating occasion database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeImage{}); err != nil {
		log.Fatalf("Error migrating recipe image database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedRecipe{}); err != nil {
		log.Fatalf("Error migrating saved recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Event{}); err != nil {
		log.Fatalf("Error migrating event database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
