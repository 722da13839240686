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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Concesionaria-api/internal/interfaces/http"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("cerrar base de datos")
		}
	}()

	repos := store.Repos
	authUC := auth.NewAuthUseCase(repos.Usuarios, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	}, log)

	if cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD vacío: no se crea el usuario administrador")
	} else if created, err := authUC.EnsureDefaultAdmin(ctx, auth.AdminConfig{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	}); err != nil {
		log.Error().Err(err).Msg("crear usuario administrador")
	} else if !created {
		log.Info().Str("email", cfg.Admin.Email).Msg("usuario administrador ya existe")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log, !cfg.App.IsProduction()),
	})
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error().Interface("panic", e).Str("path", c.Path()).Msg("panic recuperado")
		},
	}))
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(httpRouter.CORS())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Concesionaria API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		AutoUC:          usecase.NewAutoUseCase(repos.Autos),
		ClienteUC:       usecase.NewClienteUseCase(repos.Clientes),
		VendedorUC:      usecase.NewVendedorUseCase(repos.Vendedores),
		ConcesionariaUC: usecase.NewConcesionariaUseCase(repos.Concesionarias),
		ObreroUC:        usecase.NewObreroUseCase(repos.Obreros),
		VentaUC:         usecase.NewVentaUseCase(repos.Ventas),
		DB:              store,
		ServiceName:     cfg.App.Name,
		JWTSecret:       cfg.JWT.Secret,
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
