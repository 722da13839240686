package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	AutoUC          *usecase.AutoUseCase
	ClienteUC       *usecase.ClienteUseCase
	VendedorUC      *usecase.VendedorUseCase
	ConcesionariaUC *usecase.ConcesionariaUseCase
	ObreroUC        *usecase.ObreroUseCase
	VentaUC         *usecase.VentaUseCase
	DB              Pinger
	ServiceName     string
	JWTSecret       string
}

type handlers struct {
	auth           *AuthHandler
	autos          *AutoHandler
	clientes       *ClienteHandler
	vendedores     *VendedorHandler
	concesionarias *ConcesionariaHandler
	obreros        *ObreroHandler
	ventas         *VentaHandler
	requireAuth    fiber.Handler
}

// Router registra las rutas de la API. Cada ruta queda disponible con y sin el prefijo /api.
// Las rutas no registradas responden 404 "Endpoint no encontrado".
func Router(app *fiber.App, deps RouterDeps) {
	status := NewStatusHandler(deps.DB, deps.ServiceName)
	app.Get("/", status.Root)
	app.Get("/health", status.Health)

	h := handlers{
		auth:           NewAuthHandler(deps.AuthUC),
		autos:          NewAutoHandler(deps.AutoUC),
		clientes:       NewClienteHandler(deps.ClienteUC),
		vendedores:     NewVendedorHandler(deps.VendedorUC),
		concesionarias: NewConcesionariaHandler(deps.ConcesionariaUC),
		obreros:        NewObreroHandler(deps.ObreroUC),
		ventas:         NewVentaHandler(deps.VentaUC),
		requireAuth:    AuthMiddleware(deps.JWTSecret),
	}
	mount(app.Group("/api"), h)
	mount(app, h)

	app.Use(NotFound)
}

// mount registra todas las rutas bajo r. El middleware de auth va en cada ruta y no en el
// grupo: un Use por prefijo también capturaría "/autosfoo", que debe responder 404.
func mount(r fiber.Router, h handlers) {
	gate := h.requireAuth

	// Auth (público salvo el perfil)
	authGroup := r.Group("/auth")
	authGroup.Post("/login", h.auth.Login)
	authGroup.Post("/register", h.auth.Register)
	authGroup.Get("/profile", gate, h.auth.Profile)

	autos := r.Group("/autos")
	autos.Get("/", gate, h.autos.List)
	autos.Post("/", gate, h.autos.Create)
	autos.Get("/:id", gate, h.autos.GetByID)
	autos.Put("/:id", gate, h.autos.Update)
	autos.Delete("/:id", gate, h.autos.Delete)

	clientes := r.Group("/clientes")
	clientes.Get("/", gate, h.clientes.List)
	clientes.Post("/", gate, h.clientes.Create)
	clientes.Get("/:id", gate, h.clientes.GetByID)
	clientes.Put("/:id", gate, h.clientes.Update)
	clientes.Delete("/:id", gate, h.clientes.Delete)

	vendedores := r.Group("/vendedores")
	vendedores.Get("/", gate, h.vendedores.List)
	vendedores.Post("/", gate, h.vendedores.Create)
	vendedores.Get("/:id", gate, h.vendedores.GetByID)
	vendedores.Put("/:id", gate, h.vendedores.Update)
	vendedores.Delete("/:id", gate, h.vendedores.Delete)

	concesionarias := r.Group("/concesionarias")
	concesionarias.Get("/", gate, h.concesionarias.List)
	concesionarias.Post("/", gate, h.concesionarias.Create)
	concesionarias.Get("/:id", gate, h.concesionarias.GetByID)
	concesionarias.Put("/:id", gate, h.concesionarias.Update)
	concesionarias.Delete("/:id", gate, h.concesionarias.Delete)

	obreros := r.Group("/obreros")
	obreros.Get("/", gate, h.obreros.List)
	obreros.Post("/", gate, h.obreros.Create)
	obreros.Get("/:id", gate, h.obreros.GetByID)
	obreros.Get("/:id/salario", gate, h.obreros.Salario)
	obreros.Put("/:id", gate, h.obreros.Update)
	obreros.Delete("/:id", gate, h.obreros.Delete)

	ventas := r.Group("/ventas")
	ventas.Get("/", gate, h.ventas.List)
	ventas.Post("/procesar", gate, h.ventas.Procesar)
}
