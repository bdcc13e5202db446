package application

import (
	"context"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
)

func (s *Service) ListStock(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.stock.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *Service) ListStockByOwner(ctx context.Context, owner string) ([]ProductResponse, error) {
	products, err := s.stock.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// AddStockEntry validates the new entry and upsert-adds it into the stock
// ledger keyed by (name, owner). Validation failures leave the ledger
// untouched.
func (s *Service) AddStockEntry(ctx context.Context, owner string, req AddStockEntryRequest) (ProductResponse, error) {
	if err := domain.ValidateProductName(req.Name); err != nil {
		return ProductResponse{}, err
	}
	today := domain.Today(s.nowFn())
	if err := domain.ValidateExpiryDate(req.ExpiryDate, today); err != nil {
		return ProductResponse{}, err
	}
	if err := domain.ValidateQuantity(req.Quantity); err != nil {
		return ProductResponse{}, err
	}

	product, err := s.stock.UpsertAdd(ctx, ports.AddStockParams{
		Type:       req.Type,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Owner:      owner,
		ExpiryDate: req.ExpiryDate,
		DateAdded:  today,
	})
	if err != nil {
		return ProductResponse{}, err
	}

	s.publishStockUpdated(ctx, product)
	s.logger.InfoContext(ctx, "stock entry added",
		"operation", "add_stock_entry",
		"product_id", product.ProductID,
		"owner", owner,
		"quantity", product.Quantity,
	)
	return toProductResponse(product), nil
}

// DeleteProduct removes a stock row outright, basket references included
// only advisorily; returns domain.ErrNotFound when the row is already gone.
func (s *Service) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.stock.GetByID(ctx, productID); err != nil {
		return err
	}
	if _, err := s.stock.Delete(ctx, productID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "product deleted",
		"operation", "delete_product",
		"product_id", productID,
	)
	return nil
}

func (s *Service) publishStockUpdated(ctx context.Context, product domain.Product) {
	s.publishEvent(ctx, ports.EventStockUpdated, map[string]any{
		"product_id": product.ProductID,
		"name":       product.Name,
		"owner":      product.Owner,
		"quantity":   product.Quantity,
	}, product.ProductID.String())
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:  p.ProductID,
		Type:       p.Type,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Owner:      p.Owner,
		ExpiryDate: p.ExpiryDate,
		DateAdded:  p.DateAdded,
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
