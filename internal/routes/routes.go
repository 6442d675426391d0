package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hsa-card/hsa_engine/internal/accounts"
	"github.com/hsa-card/hsa_engine/internal/authorization"
	"github.com/hsa-card/hsa_engine/internal/cards"
	"github.com/hsa-card/hsa_engine/internal/config"
	"github.com/hsa-card/hsa_engine/internal/eligibility"
	"github.com/hsa-card/hsa_engine/internal/ledger"
	"github.com/hsa-card/hsa_engine/internal/middleware"
	"github.com/hsa-card/hsa_engine/internal/notification"
)

// Deps aggregates shared dependencies required to wire routes. DB and Cache
// are optional; nil selects the in-memory backends and disables Redis middleware.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.IdempotencyKeyHeader + ", " + middleware.RequestIDHeader,
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var (
		ledgerBackend ledger.Ledger
		cardRepo      cards.Repository
	)
	if d.DB != nil {
		ledgerBackend = ledger.NewPostgresLedger(d.DB)
		cardRepo = cards.NewPostgresRepository(d.DB)
	} else {
		ledgerBackend = ledger.NewInMemory()
		cardRepo = cards.NewMemoryRepository()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	classifier := eligibility.NewKeywordClassifier(eligibility.RulesFromKeywords(d.Cfg.EligibleKeywords))

	generator, err := cards.NewRandomGenerator(d.Cfg.CardBIN, d.Cfg.CardValidityYears)
	if err != nil {
		return err
	}
	cardSvc, err := cards.NewService(ledgerBackend, cardRepo, generator, notifier)
	if err != nil {
		return err
	}
	accountSvc := accounts.NewService(ledgerBackend, notifier)
	authSvc := authorization.NewService(ledgerBackend, classifier, notifier)

	api := app.Group("/api")
	var createLimiter fiber.Handler
	if d.Cache != nil {
		createLimiter = middleware.RateLimit(d.Cache, "create-account", d.Cfg.CreateAccountRateLimit, d.Logger)
	}
	RegisterAccountRoutes(api, accounts.NewHandler(accountSvc), createLimiter)
	RegisterCardRoutes(api, cards.NewHandler(cardSvc))
	RegisterTransactionRoutes(api, authorization.NewHandler(authSvc))

	return nil
}
