package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshpantry/stockroom/internal/adapters/cache"
	eventadapter "github.com/freshpantry/stockroom/internal/adapters/events"
	httpadapter "github.com/freshpantry/stockroom/internal/adapters/http"
	"github.com/freshpantry/stockroom/internal/adapters/postgres"
	"github.com/freshpantry/stockroom/internal/adapters/security"
	"github.com/freshpantry/stockroom/internal/application"
	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	repos := postgres.NewRepositories(db)

	var revocations ports.SessionRevocationStore
	cleanupRedis := func() {}
	if cfg.RedisURL != "" {
		redisClient, redisErr := cache.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			_ = sqlDB.Close()
			return nil, redisErr
		}
		revocations = cache.NewRedisSessionRevocationStore(redisClient)
		cleanupRedis = func() { _ = redisClient.Close() }
	} else {
		logger.WarnContext(ctx, "redis not configured, session revocation disabled")
	}

	signer, err := security.NewJWTSigner(cfg.JWTSecret)
	if err != nil {
		cleanupRedis()
		_ = sqlDB.Close()
		return nil, err
	}

	publisher := ports.EventPublisher(eventadapter.NewLoggingPublisher(logger))
	cleanupPublisher := func() {}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, pubErr := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			ports.EventStockUpdated:      cfg.KafkaTopicStockUpdated,
			ports.EventPurchaseConfirmed: cfg.KafkaTopicPurchaseConfirmed,
			ports.EventBasketDrained:     cfg.KafkaTopicBasketDrained,
		})
		if pubErr != nil {
			logger.WarnContext(ctx, "kafka publisher disabled, using logging publisher", "error", pubErr)
		} else {
			publisher = kafkaPublisher
			cleanupPublisher = func() { _ = kafkaPublisher.Close() }
		}
	}

	service := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName: cfg.ServiceID,
			TokenTTL:    cfg.TokenTTL,
		},
		Stock:       repos.Stock,
		Basket:      repos.Basket,
		Users:       repos.Users,
		Messages:    repos.Messages,
		Revocations: revocations,
		Hasher:      security.NewBcryptHasher(cfg.BcryptCost),
		TokenSigner: signer,
		Publisher:   publisher,
		Logger:      logger,
	})

	if cfg.SeedSampleData {
		if seedErr := seedSampleStock(ctx, repos.Stock); seedErr != nil {
			logger.WarnContext(ctx, "sample data seeding failed", "error", seedErr)
		}
	}

	handler := httpadapter.NewHandler(service)
	router := httpadapter.NewRouter(handler, logger)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		cleanupFn: func(ctx context.Context) {
			cleanupPublisher()
			cleanupRedis()
			_ = sqlDB.Close()
		},
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 1)

	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "api listening", "port", r.cfg.HTTPPort)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}

// seedSampleStock loads the demo inventory into an empty stock ledger.
func seedSampleStock(ctx context.Context, stock ports.StockRepository) error {
	existing, err := stock.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	today := domain.Today(time.Now())
	samples := []ports.AddStockParams{
		{Type: "Dairy", Name: "Milk", Quantity: 1, Owner: "Peter", ExpiryDate: "2030-02-20", DateAdded: today},
		{Type: "Dairy", Name: "Eggs", Quantity: 2, Owner: "Peter", ExpiryDate: "2030-02-20", DateAdded: today},
		{Type: "Dairy", Name: "Butter", Quantity: 2, Owner: "Ann", ExpiryDate: "2030-02-20", DateAdded: today},
	}
	for _, sample := range samples {
		if _, err := stock.UpsertAdd(ctx, sample); err != nil {
			return err
		}
	}
	return nil
}
