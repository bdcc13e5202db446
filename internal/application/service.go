package application

import (
	"log/slog"
	"time"

	"github.com/freshpantry/stockroom/internal/ports"
)

type Config struct {
	ServiceName string
	TokenTTL    time.Duration
}

type Service struct {
	cfg         Config
	stock       ports.StockRepository
	basket      ports.BasketRepository
	users       ports.UserRepository
	messages    ports.MessageRepository
	revocations ports.SessionRevocationStore
	hasher      ports.PasswordHasher
	signer      ports.TokenSigner
	publisher   ports.EventPublisher
	logger      *slog.Logger
	nowFn       func() time.Time
}

type Dependencies struct {
	Config      Config
	Stock       ports.StockRepository
	Basket      ports.BasketRepository
	Users       ports.UserRepository
	Messages    ports.MessageRepository
	Revocations ports.SessionRevocationStore
	Hasher      ports.PasswordHasher
	TokenSigner ports.TokenSigner
	Publisher   ports.EventPublisher
	Logger      *slog.Logger
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "stockroom"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 30 * time.Minute
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:         cfg,
		stock:       deps.Stock,
		basket:      deps.Basket,
		users:       deps.Users,
		messages:    deps.Messages,
		revocations: deps.Revocations,
		hasher:      deps.Hasher,
		signer:      deps.TokenSigner,
		publisher:   deps.Publisher,
		logger:      logger,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}
