package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sbilibin2017/gw-invest-ledger/internal/config"
	"github.com/sbilibin2017/gw-invest-ledger/internal/facades"
	"github.com/sbilibin2017/gw-invest-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-invest-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
	"github.com/sbilibin2017/gw-invest-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-invest-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	eventPublishTimeout = 5 * time.Second
	eventBatchTimeout   = 10 * time.Millisecond
)

// @title gw-invest-ledger API
// @version 1.0.0
// @description Deposit, investment and withdrawal ledger
// @host localhost:4000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// stateStore is a ledger store that can also serve its raw snapshot.
type stateStore interface {
	services.LedgerStore
	handlers.StateDumper
}

// routerDeps are the collaborators mounted on the HTTP router.
type routerDeps struct {
	transactions *services.TransactionService
	investments  *services.InvestmentService
	withdraws    *services.WithdrawService
	users        *services.UserService
	store        stateStore
	auth         *services.AdminAuthService // nil when admin auth is disabled
	tokens       *jwt.JWT                   // nil when admin auth is disabled
	swaggerURL   string
}

// run wires the store, oracles, notifiers and event bus into the services,
// then serves HTTP until ctx is cancelled or a signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	decimal.MarshalJSONWithoutQuotes = true

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	settings, err := services.NewSettingsService(store).InitSettings(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("init settings: %w", err)
	}
	logger.Log.Infow("Ledger settings ready", "admin_email", settings.AdminEmail)

	cache, closeCache := openRateCache(ctx, cfg)
	defer closeCache()

	rails, err := config.LoadPaymentRails(cfg.PaymentRailsFile, cfg.DemoBTCAddress)
	if err != nil {
		return fmt.Errorf("load payment rails: %w", err)
	}

	oracle, closeOracle, err := openPriceOracle(cfg, rails)
	if err != nil {
		return err
	}
	defer closeOracle()

	ids := services.UUIDGenerator{}

	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer = newKafkaWriter(cfg)
		logger.Log.Infow("Publishing ledger events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	events := services.NewEventPublisher(writer, ids, eventPublishTimeout)
	defer events.Close()

	payments := services.NewPaymentService(rails, oracle, cache, cfg.PriceOracleTimeout, cfg.BankAccount)

	deps := routerDeps{
		transactions: services.NewTransactionService(store, ids, payments, events),
		investments:  services.NewInvestmentService(store, ids, events),
		withdraws: services.NewWithdrawService(
			store, ids, buildNotifier(cfg), events, cfg.AdminEmail, cfg.NotifyTimeout,
		),
		users:      services.NewUserService(store),
		store:      store,
		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	}

	if cfg.AdminAuthEnabled() {
		deps.tokens = jwt.New(jwt.WithSecretKey(cfg.AdminJWTSecret), jwt.WithExpiration(cfg.JWTExp))
		deps.auth = services.NewAdminAuthService(cfg.AdminPasswordHash, deps.tokens)
		logger.Log.Info("Admin routes require a bearer token")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(deps),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the API under /api, the snapshot at /db.json and the
// swagger UI. Admin routes are guarded only when deps.tokens is set.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middlewares.LoggingMiddleware)

	admin := func(r chi.Router) {
		if deps.tokens != nil {
			r.Use(middlewares.AuthMiddleware(deps.tokens))
		}
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handlers.NewPingHandler())
		r.Post("/transactions/deposit", handlers.NewDepositHandler(deps.transactions))
		r.Post("/transactions/confirm", handlers.NewConfirmDepositHandler(deps.transactions))
		r.Post("/investments/create", handlers.NewCreateInvestmentHandler(deps.investments))
		r.Get("/user/{userId}/summary", handlers.NewUserSummaryHandler(deps.users))
		r.Post("/withdraws/request", handlers.NewRequestWithdrawalHandler(deps.withdraws))

		if deps.auth != nil {
			r.Post("/admin/login", handlers.NewAdminLoginHandler(deps.auth))
		}

		r.Group(func(r chi.Router) {
			admin(r)
			r.Get("/admin/withdraws", handlers.NewListWithdrawsHandler(deps.withdraws))
			r.Post("/withdraws/{id}/approve", handlers.NewApproveWithdrawHandler(deps.withdraws))
			r.Post("/withdraws/{id}/reject", handlers.NewRejectWithdrawHandler(deps.withdraws))
		})
	})

	r.Group(func(r chi.Router) {
		admin(r)
		r.Get("/db.json", handlers.NewStateDumpHandler(deps.store))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(deps.swaggerURL)))

	return r
}

// openStore opens the configured ledger backend and returns a close func.
func openStore(ctx context.Context, cfg *config.Config) (stateStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)
		return migrateSQLStore(ctx, db, cfg, "postgres")

	case config.StoreSQLite:
		db, err := sqlx.ConnectContext(ctx, "sqlite3", cfg.SQLitePath+"?_journal_mode=WAL&_busy_timeout=5000")
		if err != nil {
			return nil, nil, fmt.Errorf("SQLite open error: %w", err)
		}
		// sqlite serializes writers anyway
		db.SetMaxOpenConns(1)
		return migrateSQLStore(ctx, db, cfg, "sqlite")

	default:
		repo, err := repositories.NewFileStateRepository(cfg.StoreFilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open ledger file: %w", err)
		}
		logger.Log.Infow("Using file ledger store", "path", cfg.StoreFilePath)
		return repo, func() {}, nil
	}
}

func migrateSQLStore(ctx context.Context, db *sqlx.DB, cfg *config.Config, backend string) (stateStore, func(), error) {
	repo := repositories.NewSQLStateRepository(db, cfg.StoreMaxRetries)
	if err := repo.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate %s ledger store: %w", backend, err)
	}
	logger.Log.Infow("Using SQL ledger store", "backend", backend)
	return repo, func() { db.Close() }, nil
}

// newKafkaWriter builds the ledger event writer. Events are published one
// per committed mutation, so batches are flushed almost immediately.
func newKafkaWriter(cfg *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           eventBatchTimeout,
	}
}

// openRateCache connects to Redis when configured. An unreachable Redis
// disables caching instead of failing startup.
func openRateCache(ctx context.Context, cfg *config.Config) (services.RateCache, func()) {
	if cfg.RedisAddr == "" {
		return nil, func() {}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unavailable, rate cache disabled", "addr", cfg.RedisAddr, "error", err)
		rdb.Close()
		return nil, func() {}
	}
	return repositories.NewRateCacheRepository(rdb, cfg.RateCacheTTL), func() { rdb.Close() }
}

// openPriceOracle builds the configured oracle. Coin ids for CoinGecko come
// from the payment rails.
func openPriceOracle(cfg *config.Config, rails []models.PaymentRail) (services.PriceOracle, func(), error) {
	switch cfg.PriceOracle {
	case config.OracleGRPC:
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		logger.Log.Infow("Using gRPC price oracle", "addr", grpcAddr)
		return facades.NewExchangeRateGRPCFacade(pb.NewExchangeServiceClient(conn)), func() { conn.Close() }, nil

	default:
		coinIDs := make(map[string]string, len(rails))
		for _, rail := range rails {
			coinIDs[rail.Asset] = rail.CoinID
		}
		logger.Log.Infow("Using CoinGecko price oracle", "url", cfg.CoinGeckoURL)
		return facades.NewCoinGeckoFacade(cfg.CoinGeckoURL, coinIDs, cfg.PriceOracleTimeout), func() {}, nil
	}
}

// buildNotifier fans admin notifications out to SMTP and Telegram. It
// returns nil when neither channel is configured.
func buildNotifier(cfg *config.Config) services.Notifier {
	var channels []facades.Notifier

	if cfg.SMTPHost != "" {
		channels = append(channels, facades.NewSMTPNotifierFacade(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPSecure,
		))
	}

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			logger.Log.Warnw("Telegram bot unavailable, skipping channel", "error", err)
		} else {
			channels = append(channels, facades.NewTelegramNotifierFacade(bot, cfg.TelegramChatID))
		}
	}

	multi := facades.NewMultiNotifier(channels...)
	if multi.Len() == 0 {
		logger.Log.Info("No admin notification channel configured")
		return nil
	}
	return multi
}
