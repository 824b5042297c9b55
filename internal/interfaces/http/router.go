package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/auth"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/reports"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProfileUC      *usecase.ProfileUseCase
	MemberUC       *usecase.MemberUseCase
	VisitorUC      *usecase.VisitorUseCase
	CultoUC        *usecase.CultoUseCase
	EventUC        *usecase.EventUseCase
	EntradaUC      *usecase.EntradaUseCase
	SaidaUC        *usecase.SaidaUseCase
	DashboardUC    *usecase.DashboardUseCase
	ReportUC       *reports.ReportUseCase
	SubscriptionUC *billing.SubscriptionUseCase
	ReconcileUC    *billing.ReconcileUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra as rotas da API.
//
// Três níveis de acesso:
//   - público: auth, webhooks, health, metrics
//   - autenticado: perfil e assinatura (um usuário expirado precisa delas
//     para pagar)
//   - autenticado + plano ativo: toda a gestão (membros, finanças, relatórios)
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", MetricsMiddleware())

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Webhooks de pagamento (público; autenticado pela assinatura do evento)
	webhookHandler := NewWebhookHandler(deps.ReconcileUC, deps.Log)
	api.Post("/webhooks/:provider", webhookHandler.Handle)

	// Rotas autenticadas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)

	subs := protected.Group("/subscriptions")
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC, deps.Log)
	subs.Get("/status", subscriptionHandler.Status)
	subs.Post("/checkout", subscriptionHandler.Checkout)

	// Gestão: exige plano ativo (trial vigente ou plano pago)
	gated := protected.Group("/", RequirePlanActive(deps.SubscriptionUC))

	members := gated.Group("/members")
	memberHandler := NewMemberHandler(deps.MemberUC)
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.List)
	members.Get("/:id", memberHandler.GetByID)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	visitors := gated.Group("/visitors")
	visitorHandler := NewVisitorHandler(deps.VisitorUC)
	visitors.Post("/", visitorHandler.Create)
	visitors.Get("/", visitorHandler.List)
	visitors.Put("/:id", visitorHandler.Update)
	visitors.Delete("/:id", visitorHandler.Delete)

	cultos := gated.Group("/cultos")
	cultoHandler := NewCultoHandler(deps.CultoUC)
	cultos.Post("/", cultoHandler.Create)
	cultos.Get("/", cultoHandler.List)
	cultos.Put("/:id", cultoHandler.Update)
	cultos.Delete("/:id", cultoHandler.Delete)

	events := gated.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	entradas := gated.Group("/entradas")
	entradaHandler := NewEntradaHandler(deps.EntradaUC)
	entradas.Post("/", entradaHandler.Create)
	entradas.Get("/", entradaHandler.List)
	entradas.Put("/:id", entradaHandler.Update)
	entradas.Delete("/:id", entradaHandler.Delete)

	saidas := gated.Group("/saidas")
	saidaHandler := NewSaidaHandler(deps.SaidaUC)
	saidas.Post("/", saidaHandler.Create)
	saidas.Get("/", saidaHandler.List)
	saidas.Put("/:id", saidaHandler.Update)
	saidas.Delete("/:id", saidaHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	gated.Get("/dashboard", dashboardHandler.Summary)

	reportsGroup := gated.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/finance", reportHandler.Finance)
	reportsGroup.Get("/members", reportHandler.Members)
}
