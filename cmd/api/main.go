package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"dergipage_backend/internal/controller"
	"dergipage_backend/internal/middleware"
	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/config"
	"dergipage_backend/pkg/cron"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/seed"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)

	// Public Product Routes
	api.Get("/products", controller.ListProducts)
	api.Get("/products/:id", controller.GetProduct)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", controller.GetMe)

	// Abonelik kapsamındaki makale listesi (erişim çözümlemesi burada)
	protected.Get("/products/:id/articles", controller.GetProductArticles)
	protected.Post("/products/:id/trial", controller.StartTrial)

	// Favorites
	protected.Post("/articles/:article_id/favorite", controller.AddFavorite)
	protected.Delete("/articles/:article_id/favorite", controller.RemoveFavorite)
	protected.Get("/favorites", controller.ListFavorites)

	// Reading progress
	protected.Post("/articles/:article_id/progress", controller.MarkSectionRead)
	protected.Get("/articles/:article_id/progress", controller.GetProgress)

	// Subscription routes
	subscriptions := api.Group("/subscriptions", middleware.AuthMiddleware())
	subscriptions.Get("/my", controller.GetMySubscriptions)
	subscriptions.Post("/create-checkout-session", controller.CreateCheckoutSession)
	subscriptions.Post("/cancel-subscription", controller.CancelSubscription)

	// Staff routes (ürün/makale yönetimi)
	staff := api.Group("/staff", middleware.AuthMiddleware(), middleware.RequireStaff())
	staff.Post("/products", controller.CreateProduct)
	staff.Put("/products/:id", controller.UpdateProduct)
	staff.Delete("/products/:id", controller.DeleteProduct)
	staff.Post("/products/:id/articles", controller.CreateArticle)
	staff.Put("/articles/:article_id", controller.UpdateArticle)
	staff.Delete("/articles/:article_id", controller.DeleteArticle)
	staff.Post("/articles/:article_id/image", controller.UploadArticleImage)

	// Stripe webhook
	api.Post("/webhook", controller.HandleStripeWebhook)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	controller.InitSubscriptionController()
	cron.InitSubscriptionStatusCron()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// DATABASE_URL verilmemişse parçalı konfigürasyondan DSN kur
		dbURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.DBName)
	}

	database.InitDB(dbURL)
	err := database.MigrateDatabase(
		&model.User{},
		&model.StaffMember{},
		&model.Product{},
		&model.Variant{},
		&model.Article{},
		&model.Subscription{},
		&model.Favorite{},
		&model.ReadingProgress{},
		&model.PromoCode{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if os.Getenv("SEED_DATA") == "true" {
		seed.SeedStaffMembers(database.DB)
		seed.SeedProducts(database.DB)
		seed.SeedPromoCodes(database.DB)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
