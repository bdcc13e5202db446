package ports

import (
	"context"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/google/uuid"
)

type AddStockParams struct {
	Type       string
	Name       string
	Quantity   int
	Owner      string
	ExpiryDate string
	DateAdded  string
}

type AddBasketParams struct {
	ProductID  uuid.UUID
	Type       string
	Name       string
	Quantity   int
	Owner      string
	ExpiryDate string
	DateAdded  string
}

// StockRepository is the stock side of the quantity ledger. Absence is a
// normal outcome on the Find* calls; GetByID maps it to domain.ErrNotFound.
type StockRepository interface {
	GetByID(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	FindByID(ctx context.Context, productID uuid.UUID) (domain.Product, bool, error)
	// UpsertAdd increments the (name, owner) row by params.Quantity, or
	// inserts a new row when none exists.
	UpsertAdd(ctx context.Context, params AddStockParams) (domain.Product, error)
	// AdjustQuantity applies delta to the row's quantity; a result of zero
	// or less deletes the row. Returns the number of rows written or
	// removed, domain.ErrNotFound when the row is absent.
	AdjustQuantity(ctx context.Context, productID uuid.UUID, delta int) (int64, error)
	Delete(ctx context.Context, productID uuid.UUID) (int64, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Product, error)
}

// BasketRepository is the basket side of the quantity ledger, keyed for
// upserts by the originating product id.
type BasketRepository interface {
	GetByID(ctx context.Context, basketItemID uuid.UUID) (domain.BasketItem, error)
	UpsertAdd(ctx context.Context, params AddBasketParams) (domain.BasketItem, error)
	AdjustQuantity(ctx context.Context, basketItemID uuid.UUID, delta int) (int64, error)
	Delete(ctx context.Context, basketItemID uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]domain.BasketItem, error)
}

type CreateUserParams struct {
	Username     string
	PasswordHash string
	IsAdmin      bool
}

type UpdateUserParams struct {
	UserID       uuid.UUID
	Username     *string
	PasswordHash *string
	IsAdmin      *bool
}

type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	Update(ctx context.Context, params UpdateUserParams) (domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.User, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) (domain.Message, error)
	ListAll(ctx context.Context) ([]domain.Message, error)
}
