package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"hooklabe/cmd/api/auth"
	"hooklabe/cmd/api/clients/identityclient"
	"hooklabe/cmd/api/router"
	"hooklabe/cmd/api/services"
	"hooklabe/cmd/internal/logger"
	"hooklabe/config"
	"hooklabe/db"
	"hooklabe/eventbus"
	"hooklabe/generator"
	"hooklabe/repositories"
)

// @title           HookLabe AI API
// @version         1.0
// @description     Credit-gated short-form video script generation, plans and payments
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal(err)
	}

	var bus eventbus.Publisher = eventbus.Noop{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaBus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			log.Fatal(err)
		}
		bus = kafkaBus
	}
	defer bus.Close()

	engine, err := generator.NewClient(ctx, cfg.Generation.GeminiModel, cfg.Generation.IncludeStrategicAnalysis)
	if err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	identity := identityclient.NewFromEnv()
	if identity.Mock() {
		logger.Log.Warn("identity service credentials missing, auth runs in mock mode")
	}
	unsubscribe := identity.Subscribe(func(s *identityclient.Session) {
		if s == nil {
			logger.InfoWithFields("session ended", nil)
			return
		}
		logger.InfoWithFields("session established", logger.Fields{"user_id": s.Identity.ID})
	})
	defer unsubscribe()

	creditRepo := repositories.NewCreditRepository(db.Database())
	paymentRepo := repositories.NewPaymentRepository(db.Database())

	authSvc := services.NewAuthService(identity, creditRepo, jwtManager, cfg.Credits.SignupGrant)
	r := router.New(router.Deps{
		Auth:       authSvc,
		Generation: services.NewGenerationService(engine, creditRepo, cfg, bus),
		User:       services.NewUserService(creditRepo),
		Plans:      services.NewPlanService(cfg),
		Payments:   services.NewPaymentService(cfg, paymentRepo, creditRepo, bus),
		Pages:      services.NewPageService(),
	})

	// browser clients call the API cross-origin; SSE needs the exposed headers
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Span-Id"},
		AllowCredentials: false,
	}).Handler(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
