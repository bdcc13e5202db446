package postgres

import (
	"context"
	"errors"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stockRepository struct {
	db     *gorm.DB
	ledger quantityLedger[productModel]
}

func newStockRepository(db *gorm.DB) *stockRepository {
	return &stockRepository{
		db: db,
		ledger: quantityLedger[productModel]{
			db:       db,
			idColumn: "product_id",
			quantity: func(rec productModel) int { return rec.Quantity },
		},
	}
}

func (r *stockRepository) GetByID(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var rec productModel
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, wrapQueryErr(err)
	}
	return toDomainProduct(rec), nil
}

func (r *stockRepository) FindByID(ctx context.Context, productID uuid.UUID) (domain.Product, bool, error) {
	var rec productModel
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, false, nil
		}
		return domain.Product{}, false, wrapQueryErr(err)
	}
	return toDomainProduct(rec), true, nil
}

// UpsertAdd merges into an existing (name, owner) row or inserts a fresh
// one. Find-then-write, same shape as adjust; concurrent upserts of the
// same pair can both take the insert path.
func (r *stockRepository) UpsertAdd(ctx context.Context, params ports.AddStockParams) (domain.Product, error) {
	var existing productModel
	err := r.db.WithContext(ctx).
		Where("name = ? AND owner = ?", params.Name, params.Owner).
		Take(&existing).Error
	switch {
	case err == nil:
		newQuantity := existing.Quantity + params.Quantity
		if updateErr := r.db.WithContext(ctx).Model(&productModel{}).
			Where("product_id = ?", existing.ProductID).
			Update("quantity", newQuantity).Error; updateErr != nil {
			return domain.Product{}, wrapQueryErr(updateErr)
		}
		existing.Quantity = newQuantity
		return toDomainProduct(existing), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec := productModel{
			Type:       params.Type,
			Name:       params.Name,
			Quantity:   params.Quantity,
			Owner:      params.Owner,
			ExpiryDate: params.ExpiryDate,
			DateAdded:  params.DateAdded,
		}
		if createErr := r.db.WithContext(ctx).Create(&rec).Error; createErr != nil {
			return domain.Product{}, wrapQueryErr(createErr)
		}
		return toDomainProduct(rec), nil
	default:
		return domain.Product{}, wrapQueryErr(err)
	}
}

func (r *stockRepository) AdjustQuantity(ctx context.Context, productID uuid.UUID, delta int) (int64, error) {
	return r.ledger.adjust(ctx, productID, delta)
}

func (r *stockRepository) Delete(ctx context.Context, productID uuid.UUID) (int64, error) {
	return r.ledger.remove(ctx, productID)
}

func (r *stockRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var recs []productModel
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, wrapQueryErr(err)
	}
	return toDomainProducts(recs), nil
}

func (r *stockRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Product, error) {
	var recs []productModel
	if err := r.db.WithContext(ctx).Where("owner = ?", owner).Find(&recs).Error; err != nil {
		return nil, wrapQueryErr(err)
	}
	return toDomainProducts(recs), nil
}
