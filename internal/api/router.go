package api

import (
	"ccc-smartassist/docs"
	"ccc-smartassist/internal/api/handlers"
	"ccc-smartassist/pkg/auth"
	"ccc-smartassist/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	ruleHandler *handlers.RuleHandler,
	faqHandler *handlers.FAQHandler,
	sessionHandler *handlers.SessionHandler,
	adminHandler *handlers.AdminHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024, // PDF uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Chat is open to guests; a valid token adds persistence.
	api.Post("/chat", middleware.OptionalAuthMiddleware(jwtManager), chatHandler.Chat)

	// Public read surface
	api.Get("/knowledge", knowledgeHandler.List)
	api.Get("/rules", ruleHandler.List)
	api.Get("/faqs", faqHandler.List)
	api.Get("/suggestions", faqHandler.Suggestions)
	api.Get("/settings", adminHandler.GetSettings)

	// Authenticated routes
	protected := api.Group("", middleware.AuthMiddleware(jwtManager, appLogger))
	protected.Get("/sessions", sessionHandler.List)
	protected.Post("/sessions", sessionHandler.Save)
	protected.Delete("/sessions/:id", sessionHandler.Delete)
	protected.Post("/feedback", sessionHandler.Feedback)
	protected.Get("/profile", adminHandler.GetProfile)
	protected.Put("/profile", adminHandler.UpdateProfile)

	// Admin-only content management
	admin := api.Group("", middleware.AdminMiddleware(jwtManager, appLogger))
	admin.Post("/knowledge", knowledgeHandler.Add)
	admin.Post("/knowledge/upload", knowledgeHandler.Upload)
	admin.Delete("/knowledge/:id", knowledgeHandler.Delete)
	admin.Post("/rules", ruleHandler.Add)
	admin.Delete("/rules/:id", ruleHandler.Delete)
	admin.Post("/faqs", faqHandler.Add)
	admin.Put("/faqs/:id", faqHandler.Update)
	admin.Delete("/faqs/:id", faqHandler.Delete)
	admin.Get("/admin/stats", adminHandler.Stats)
	admin.Get("/admin/users", adminHandler.ListUsers)
	admin.Put("/admin/users/:id", adminHandler.UpdateUser)
	admin.Delete("/admin/users/:id", adminHandler.DeleteUser)
	admin.Get("/admin/settings", adminHandler.GetAdminSettings)
	admin.Post("/admin/settings", adminHandler.UpdateSettings)

	return app
}
