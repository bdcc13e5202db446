package postgres

import (
	"context"
	"errors"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type basketRepository struct {
	db     *gorm.DB
	ledger quantityLedger[basketItemModel]
}

func newBasketRepository(db *gorm.DB) *basketRepository {
	return &basketRepository{
		db: db,
		ledger: quantityLedger[basketItemModel]{
			db:       db,
			idColumn: "basket_item_id",
			quantity: func(rec basketItemModel) int { return rec.Quantity },
		},
	}
}

func (r *basketRepository) GetByID(ctx context.Context, basketItemID uuid.UUID) (domain.BasketItem, error) {
	var rec basketItemModel
	if err := r.db.WithContext(ctx).Where("basket_item_id = ?", basketItemID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BasketItem{}, domain.ErrNotFound
		}
		return domain.BasketItem{}, wrapQueryErr(err)
	}
	return toDomainBasketItem(rec), nil
}

// UpsertAdd merges by source product id: repeated adds of the same product
// grow one basket row instead of creating duplicates.
func (r *basketRepository) UpsertAdd(ctx context.Context, params ports.AddBasketParams) (domain.BasketItem, error) {
	var existing basketItemModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", params.ProductID).
		Take(&existing).Error
	switch {
	case err == nil:
		newQuantity := existing.Quantity + params.Quantity
		if updateErr := r.db.WithContext(ctx).Model(&basketItemModel{}).
			Where("basket_item_id = ?", existing.BasketItemID).
			Update("quantity", newQuantity).Error; updateErr != nil {
			return domain.BasketItem{}, wrapQueryErr(updateErr)
		}
		existing.Quantity = newQuantity
		return toDomainBasketItem(existing), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec := basketItemModel{
			ProductID:  params.ProductID,
			Type:       params.Type,
			Name:       params.Name,
			Quantity:   params.Quantity,
			Owner:      params.Owner,
			ExpiryDate: params.ExpiryDate,
			DateAdded:  params.DateAdded,
		}
		if createErr := r.db.WithContext(ctx).Create(&rec).Error; createErr != nil {
			return domain.BasketItem{}, wrapQueryErr(createErr)
		}
		return toDomainBasketItem(rec), nil
	default:
		return domain.BasketItem{}, wrapQueryErr(err)
	}
}

func (r *basketRepository) AdjustQuantity(ctx context.Context, basketItemID uuid.UUID, delta int) (int64, error) {
	return r.ledger.adjust(ctx, basketItemID, delta)
}

func (r *basketRepository) Delete(ctx context.Context, basketItemID uuid.UUID) (int64, error) {
	return r.ledger.remove(ctx, basketItemID)
}

func (r *basketRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&basketItemModel{})
	return res.RowsAffected, wrapQueryErr(res.Error)
}

func (r *basketRepository) ListAll(ctx context.Context) ([]domain.BasketItem, error) {
	var recs []basketItemModel
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, wrapQueryErr(err)
	}
	out := make([]domain.BasketItem, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainBasketItem(rec))
	}
	return out, nil
}
