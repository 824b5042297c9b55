package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/auth"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/billing"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/reports"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/application/usecase"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/infrastructure/payment"
	infrapdf "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/infrastructure/pdf"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/lenonjund-prog/ChurchOnFirebase-sub000/internal/interfaces/http"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/config"
	"github.com/lenonjund-prog/ChurchOnFirebase-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	profileRepo := postgres.NewProfileRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	visitorRepo := postgres.NewVisitorRepository(pool)
	cultoRepo := postgres.NewCultoRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	entradaRepo := postgres.NewEntradaRepository(pool)
	saidaRepo := postgres.NewSaidaRepository(pool)
	webhookEventRepo := postgres.NewWebhookEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Provedores de pagamento: só entram na lista os que têm credencial.
	var providers []billing.PaymentProvider
	if cfg.Billing.StripeSecretKey != "" {
		providers = append(providers, payment.NewStripeProvider(
			cfg.Billing.StripeSecretKey, cfg.Billing.StripeWebhookSecret))
	}
	if cfg.Billing.MercadoPagoAccessToken != "" {
		providers = append(providers, payment.NewMercadoPagoProvider(payment.MercadoPagoConfig{
			AccessToken:   cfg.Billing.MercadoPagoAccessToken,
			WebhookSecret: cfg.Billing.MercadoPagoWebhookSecret,
			PlanIDAnual:   cfg.Billing.MercadoPagoPlanIDAnual,
			PlanIDMensal:  cfg.Billing.MercadoPagoPlanIDMensal,
			BaseURL:       cfg.Billing.MercadoPagoBaseURL,
		}))
	}
	if cfg.Billing.PagBankToken != "" {
		providers = append(providers, payment.NewPagBankProvider(payment.PagBankConfig{
			Token:      cfg.Billing.PagBankToken,
			BaseURL:    cfg.Billing.PagBankBaseURL,
			AppBaseURL: cfg.App.BaseURL,
		}))
	}
	log.Info().Int("providers", len(providers)).Msg("provedores de pagamento habilitados")

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	profileUC := usecase.NewProfileUseCase(profileRepo)
	memberUC := usecase.NewMemberUseCase(memberRepo)
	visitorUC := usecase.NewVisitorUseCase(visitorRepo)
	cultoUC := usecase.NewCultoUseCase(cultoRepo)
	eventUC := usecase.NewEventUseCase(eventRepo)
	entradaUC := usecase.NewEntradaUseCase(entradaRepo)
	saidaUC := usecase.NewSaidaUseCase(saidaRepo)
	dashboardUC := usecase.NewDashboardUseCase(entradaRepo, saidaRepo, memberRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewReportUseCase(profileRepo, entradaRepo, saidaRepo, memberRepo, pdfGenerator)

	subscriptionUC := billing.NewSubscriptionUseCase(profileRepo, providers)
	reconcileUC := billing.NewReconcileUseCase(providers, profileRepo, userRepo, webhookEventRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.BaseURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Church On API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProfileUC:      profileUC,
		MemberUC:       memberUC,
		VisitorUC:      visitorUC,
		CultoUC:        cultoUC,
		EventUC:        eventUC,
		EntradaUC:      entradaUC,
		SaidaUC:        saidaUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		SubscriptionUC: subscriptionUC,
		ReconcileUC:    reconcileUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
