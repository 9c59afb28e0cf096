package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/domain/fiber/handler"
	"github.com/fadilmartias/cv-analysis-api/internal/logger"
	"github.com/fadilmartias/cv-analysis-api/internal/middleware"
	"github.com/fadilmartias/cv-analysis-api/internal/service"
	"github.com/fadilmartias/cv-analysis-api/internal/usecase"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to a dotenv file to load before reading the environment")
	pflag.Parse()

	envErr := godotenv.Load(*envFile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		ReportCaller: !cfg.App.IsProduction(),
	})
	if envErr != nil {
		logger.Info().Str("path", *envFile).Msg("no env file loaded, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, err := service.NewCompleter(ctx, cfg.AI)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create completion client")
	}
	extractor := util.NewExtractorRegistry(cfg.Upload)
	uc := usecase.NewAnalysisUsecase(extractor, completer, cfg.AI)
	h := handler.NewAnalyzeHandler(uc, handler.NewUploadGuard(cfg.Upload), cfg.App.Version)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Room for the other form fields; the guard enforces the file limit.
		BodyLimit:    int(cfg.Upload.MaxSize) + 1<<20,
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: !cfg.App.IsProduction(),
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origin,
		AllowMethods: cfg.CORS.AllowMethods(),
		AllowHeaders: cfg.CORS.AllowHeaders(),
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return cfg.App.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	h.RegisterRoutes(app)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logger.Info().
		Str("addr", cfg.App.Addr()).
		Str("provider", cfg.AI.Provider).
		Str("model", cfg.AI.Model).
		Str("env", cfg.App.Env).
		Msg("server starting")
	if err := app.Listen(cfg.App.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
