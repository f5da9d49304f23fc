package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/talentoplus/talento-api/internal/application/assistant"
	"github.com/talentoplus/talento-api/internal/application/auth"
	appemployee "github.com/talentoplus/talento-api/internal/application/employee"
	"github.com/talentoplus/talento-api/internal/application/usecase"
	infraai "github.com/talentoplus/talento-api/internal/infrastructure/ai"
	"github.com/talentoplus/talento-api/internal/infrastructure/excel"
	"github.com/talentoplus/talento-api/internal/infrastructure/mail"
	infrapdf "github.com/talentoplus/talento-api/internal/infrastructure/pdf"
	"github.com/talentoplus/talento-api/internal/infrastructure/postgres"
	httpRouter "github.com/talentoplus/talento-api/internal/interfaces/http"
	"github.com/talentoplus/talento-api/pkg/config"
	"github.com/talentoplus/talento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "talento-api",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	mailer := mail.NewSMTPSender(cfg.SMTP)
	cvGenerator := infrapdf.NewMarotoCVGenerator()
	spreadsheetParser := excel.NewParser()

	authUC := auth.NewUseCase(userRepo, employeeRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, departmentRepo, cvGenerator)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	importUC := appemployee.NewImportUseCase(spreadsheetParser, employeeRepo, departmentRepo)

	// Asistente del dashboard: Gemini genera el SQL y un ejecutor con
	// conexión dedicada (fuera del pool) lo corre tal cual.
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	rawExecutor := postgres.NewRawQueryExecutor(cfg.DB.ConnectionString())
	assistantUC := assistant.NewUseCase(geminiSvc, rawExecutor, cfg.AI.GeminiAPIKey != "")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // importaciones grandes de Excel
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "TalentoPlus API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmployeeUC:   employeeUC,
		DepartmentUC: departmentUC,
		DashboardUC:  dashboardUC,
		ImportUC:     importUC,
		AssistantUC:  assistantUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
