package api

import (
	"finwise/docs"
	"finwise/internal/api/handlers"
	"finwise/pkg/auth"
	"finwise/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Income   *handlers.IncomeHandler
	Expense  *handlers.ExpenseHandler
	Receipt  *handlers.ReceiptHandler
	Insights *handlers.InsightsHandler
	Admin    *handlers.AdminHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	bodyLimit int,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
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

	authRequired := middleware.AuthMiddleware(jwtManager, appLogger)

	api := app.Group("/api")

	// Auth (public)
	api.Post("/register", h.Auth.Register)
	api.Post("/login", h.Auth.Login)
	api.Post("/refresh", h.Auth.RefreshToken)
	api.Get("/profile", authRequired, h.Auth.Profile)

	// Income records
	income := api.Group("/income", authRequired)
	income.Post("", h.Income.Create)
	income.Get("", h.Income.List)
	income.Put("/:id", h.Income.Update)
	income.Delete("/:id", h.Income.Delete)

	// Expense records
	expense := api.Group("/expense", authRequired)
	expense.Post("", h.Expense.Create)
	expense.Get("", h.Expense.List)
	expense.Put("/:id", h.Expense.Update)
	expense.Delete("/:id", h.Expense.Delete)

	// Receipt parsing
	api.Post("/upload-receipt", authRequired, h.Receipt.Upload)

	// Insights
	api.Get("/recommendations", authRequired, h.Insights.Recommendations)
	visualization := api.Group("/visualization", authRequired)
	visualization.Get("", h.Insights.Visualization)
	visualization.Get("/chart/monthly", h.Insights.MonthlyChart)
	visualization.Get("/chart/category", h.Insights.CategoryChart)

	// Admin
	admin := api.Group("/admin")
	admin.Post("/register", h.Admin.Register)
	admin.Post("/login", h.Admin.Login)

	adminOnly := admin.Group("", authRequired, middleware.RequireAdmin())
	adminOnly.Get("/profile", h.Admin.Profile)
	adminOnly.Get("/users", h.Admin.ListUsers)
	adminOnly.Delete("/users/:id", h.Admin.DeleteUser)

	return app
}
