package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"recipehub/internal/api/handlers"
	"recipehub/internal/api/routes"
	"recipehub/internal/middleware"
	"recipehub/internal/utils"
	"recipehub/internal/utils/storage"
	"recipehub/pkg/category"
	"recipehub/pkg/event"
	"recipehub/pkg/jwt"
	"recipehub/pkg/recipe"
	"recipehub/pkg/review"
	"recipehub/pkg/user"
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	eventRepository := event.NewEventRepository(db)
	categoryRepository := category.NewCategoryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, recipeRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, reviewRepository, s3)
	reviewService := review.NewReviewService(reviewRepository)
	eventService := event.NewEventService(eventRepository, s3)
	categoryService := category.NewCategoryService(categoryRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	eventHandler := handlers.NewEventHandler(eventService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		ReviewHandler:   reviewHandler,
		EventHandler:    eventHandler,
		CategoryHandler: categoryHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
