package routes

import (
	"github.com/gofiber/fiber/v2"

	"recipehub/internal/api/handlers"
	"recipehub/internal/middleware"
	"recipehub/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	ReviewHandler   handlers.ReviewHandler
	EventHandler    handlers.EventHandler
	CategoryHandler handlers.CategoryHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipe()
	c.Event()
	c.Taxonomy()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Patch("/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePassword)
	}
}

func (c *Config) Recipe() {
	recipes := c.App.Group("/api/v1/recipes")

	// browse routes resolve the viewer when a token is present so saved
	// flags come back right, but never require one
	recipes.Get("", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipes)
	recipes.Get("/saved", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetSavedRecipes)
	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/reviews", c.ReviewHandler.GetRecipeReviews)
	recipes.Get("/:id/rating", c.ReviewHandler.GetRecipeRating)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/save", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.SaveRecipe)
	recipes.Delete("/:id/save", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UnsaveRecipe)
	recipes.Post("/:id/reviews", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.SubmitReview)

	c.App.Delete("/api/v1/reviews/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.DeleteReview)
}

func (c *Config) Event() {
	events := c.App.Group("/api/v1/events")
	events.Get("", c.EventHandler.GetEvents)
	events.Get("/:id", c.EventHandler.GetEventByID)
}

func (c *Config) Taxonomy() {
	c.App.Get("/api/v1/categories", c.CategoryHandler.GetCategories)
	c.App.Get("/api/v1/occasions", c.CategoryHandler.GetOccasions)
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminOnly(),
	)

	admin.Get("/users", c.UserHandler.GetUsers)
	admin.Delete("/users/:id", c.UserHandler.DeleteUser)

	admin.Delete("/recipes/:id", c.RecipeHandler.DeleteRecipe)

	admin.Post("/events", c.EventHandler.CreateEvent)
	admin.Put("/events/:id", c.EventHandler.UpdateEvent)
	admin.Delete("/events/:id", c.EventHandler.DeleteEvent)

	admin.Post("/categories", c.CategoryHandler.CreateCategory)
	admin.Put("/categories/:id", c.CategoryHandler.UpdateCategory)
	admin.Delete("/categories/:id", c.CategoryHandler.DeleteCategory)

	admin.Post("/occasions", c.CategoryHandler.CreateOccasion)
	admin.Put("/occasions/:id", c.CategoryHandler.UpdateOccasion)
	admin.Delete("/occasions/:id", c.CategoryHandler.DeleteOccasion)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
