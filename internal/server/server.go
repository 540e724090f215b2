package server

import (
	"trivia-api/internal/config"
	"trivia-api/internal/handler"
	"trivia-api/internal/metrics"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/util"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

const (
	corsAllowHeaders = "Content-Type,Authorization,true"
	corsAllowMethods = "GET,PUT,POST,DELETE,OPTIONS"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Service service.TriviaService
	Metrics *metrics.Metrics
	// Health lists the dependencies reported by GET /healthz.
	Health map[string]handler.Pinger
}

// New builds the Fiber application with middleware and routes.
func New(cfg *config.Config, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	app.Use(requestid.New(requestid.Config{Generator: util.NewULID}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	}))
	app.Use(m.Middleware())
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())

	registerRoutes(app, deps.Service)

	app.Get("/healthz", handler.NewHealthHandler(deps.Health).Health)
	app.Get("/metrics", m.Handler())
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app
}

func registerRoutes(app *fiber.App, svc service.TriviaService) {
	v := validation.NewValidator()
	vm := middleware.NewValidationMiddleware()

	categoryHandler := handler.NewCategoryHandler(svc)
	questionHandler := handler.NewQuestionHandler(svc, v)
	quizHandler := handler.NewQuizHandler(svc, v)

	app.Get("/categories", categoryHandler.ListCategories)
	app.Get("/categories/:id/questions", vm.ValidateID("id"), categoryHandler.ListQuestionsByCategory)

	app.Get("/questions", questionHandler.ListQuestions)
	app.Post("/questions", questionHandler.CreateQuestion)
	app.Post("/questions/find", questionHandler.SearchQuestions)
	app.Delete("/questions/:id", vm.ValidateID("id"), questionHandler.DeleteQuestion)

	app.Post("/quizzes", quizHandler.NextQuestion)
}
