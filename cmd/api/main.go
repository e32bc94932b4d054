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

	appanalytics "github.com/tu-usuario/logitrack/internal/application/analytics"
	"github.com/tu-usuario/logitrack/internal/application/auth"
	apptransfer "github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/internal/application/usecase"
	"github.com/tu-usuario/logitrack/internal/infrastructure/notifier"
	infrapdf "github.com/tu-usuario/logitrack/internal/infrastructure/pdf"
	"github.com/tu-usuario/logitrack/internal/infrastructure/postgres"
	"github.com/tu-usuario/logitrack/internal/infrastructure/scandevice"
	httpRouter "github.com/tu-usuario/logitrack/internal/interfaces/http"
	"github.com/tu-usuario/logitrack/pkg/config"
	"github.com/tu-usuario/logitrack/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	transportRepo := postgres.NewTransportRepository(pool)
	codeRepo := postgres.NewCodeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	// Lector de códigos conectado por red
	scanner := scandevice.NewTCPScanner(cfg.Scanner.Addr, cfg.Scanner.Timeout, log)
	defer scanner.Close()

	scanCollector := apptransfer.NewScanCollector(scanner, codeRepo, log)
	transportLedger := apptransfer.NewTransportLedger(transportRepo, log)
	warehouseLedger := apptransfer.NewWarehouseLedger(warehouseRepo, log)

	smtpNotifier := notifier.NewSMTPNotifier(cfg.SMTP, log)
	lossReports := infrapdf.NewLossReportGenerator()

	sendOp := apptransfer.NewSendOperation(scanCollector, transportLedger, warehouseLedger, log)
	receiveOp := apptransfer.NewReceiveOperation(
		scanCollector, transportLedger, warehouseLedger, productRepo,
		smtpNotifier, lossReports,
		apptransfer.AlertConfig{Recipient: cfg.SMTP.AlertTo}, log,
	)

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	transportUC := usecase.NewTransportUseCase(transportRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(warehouseRepo, transportRepo, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Las transferencias bloquean mientras el lector entrega el lote;
		// el timeout de escritura debe superar al del lector.
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Scanner.Timeout + time.Second*30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LogiTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SendOp:      sendOp,
		ReceiveOp:   receiveOp,
		WarehouseUC: warehouseUC,
		TransportUC: transportUC,
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
