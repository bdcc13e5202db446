package postgres

import (
	"context"
	"errors"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// quantityLedger is the shared adjust-or-delete primitive behind both the
// stock and basket repositories: read the row, apply the delta, delete at
// zero or below, otherwise write the new quantity.
//
// The read and the write are two separate statements with no transaction
// or row lock between them. Two concurrent adjustments of the same row can
// read the same pre-delta quantity and the last write wins; that is the
// documented behavioral contract, not an oversight.
type quantityLedger[M any] struct {
	db       *gorm.DB
	idColumn string
	quantity func(M) int
}

func (l quantityLedger[M]) adjust(ctx context.Context, id uuid.UUID, delta int) (int64, error) {
	var rec M
	if err := l.db.WithContext(ctx).Where(l.idColumn+" = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, wrapQueryErr(err)
	}

	newQuantity := l.quantity(rec) + delta
	if newQuantity <= 0 {
		res := l.db.WithContext(ctx).Where(l.idColumn+" = ?", id).Delete(new(M))
		return res.RowsAffected, wrapQueryErr(res.Error)
	}
	res := l.db.WithContext(ctx).Model(new(M)).Where(l.idColumn+" = ?", id).Update("quantity", newQuantity)
	return res.RowsAffected, wrapQueryErr(res.Error)
}

func (l quantityLedger[M]) remove(ctx context.Context, id uuid.UUID) (int64, error) {
	res := l.db.WithContext(ctx).Where(l.idColumn+" = ?", id).Delete(new(M))
	return res.RowsAffected, wrapQueryErr(res.Error)
}
