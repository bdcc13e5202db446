package postgres

import (
	"errors"
	"fmt"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Stock    ports.StockRepository
	Basket   ports.BasketRepository
	Users    ports.UserRepository
	Messages ports.MessageRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Stock:    newStockRepository(db),
		Basket:   newBasketRepository(db),
		Users:    &userRepository{db: db},
		Messages: &messageRepository{db: db},
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// wrapQueryErr marks unexpected query failures as storage unavailability so
// they surface as 503 instead of a generic 500. Not-found and duplicate-key
// are expected outcomes the repositories translate themselves.
func wrapQueryErr(err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}
