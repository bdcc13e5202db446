package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
	"github.com/google/uuid"
)

func (s *Service) ListBasket(ctx context.Context) ([]BasketItemResponse, error) {
	items, err := s.basket.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BasketItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toBasketItemResponse(item))
	}
	return out, nil
}

// AddToBasket moves one unit of the product from stock into the basket.
// The stock debit and the basket credit are sequential, not atomic as a
// pair: a failure after the debit leaves the unit unaccounted for, and the
// error is surfaced to the caller without compensation.
func (s *Service) AddToBasket(ctx context.Context, productID uuid.UUID) (BasketItemResponse, error) {
	product, err := s.stock.GetByID(ctx, productID)
	if err != nil {
		return BasketItemResponse{}, err
	}
	// Zero-quantity rows are deleted on write, so this guards stale reads.
	if product.Quantity <= 0 {
		return BasketItemResponse{}, domain.ErrInsufficientStock
	}

	if _, err := s.stock.AdjustQuantity(ctx, productID, -1); err != nil {
		return BasketItemResponse{}, fmt.Errorf("debit stock: %w", err)
	}

	snapshot := product.Snapshot()
	item, err := s.basket.UpsertAdd(ctx, ports.AddBasketParams{
		ProductID:  snapshot.ProductID,
		Type:       snapshot.Type,
		Name:       snapshot.Name,
		Quantity:   1,
		Owner:      snapshot.Owner,
		ExpiryDate: snapshot.ExpiryDate,
		DateAdded:  snapshot.DateAdded,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "basket credit failed after stock debit",
			"operation", "add_to_basket",
			"product_id", productID,
			"error", err,
		)
		return BasketItemResponse{}, fmt.Errorf("credit basket: %w", err)
	}

	s.logger.InfoContext(ctx, "added to basket",
		"operation", "add_to_basket",
		"product_id", productID,
		"basket_item_id", item.BasketItemID,
	)
	return toBasketItemResponse(item), nil
}

// ReturnToStock moves one unit of a basket item back into stock. The stock
// credit happens before the basket debit, so a failure between the two
// over-counts stock rather than losing the unit.
func (s *Service) ReturnToStock(ctx context.Context, basketItemID uuid.UUID) error {
	item, err := s.basket.GetByID(ctx, basketItemID)
	if err != nil {
		return err
	}
	if item.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	if err := s.creditStock(ctx, item, 1); err != nil {
		return fmt.Errorf("credit stock: %w", err)
	}

	if item.Quantity > 1 {
		if _, err := s.basket.AdjustQuantity(ctx, item.BasketItemID, -1); err != nil {
			return fmt.Errorf("debit basket: %w", err)
		}
	} else {
		if _, err := s.basket.Delete(ctx, item.BasketItemID); err != nil {
			return fmt.Errorf("remove basket item: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "returned to stock",
		"operation", "return_to_stock",
		"basket_item_id", basketItemID,
		"product_id", item.ProductID,
	)
	return nil
}

// ConfirmPurchase clears the basket without returning anything to stock.
func (s *Service) ConfirmPurchase(ctx context.Context) (PurchaseResult, error) {
	removed, err := s.basket.DeleteAll(ctx)
	if err != nil {
		return PurchaseResult{}, err
	}
	s.publishEvent(ctx, ports.EventPurchaseConfirmed, map[string]any{"items_cleared": removed}, "basket")
	s.logger.InfoContext(ctx, "purchase confirmed",
		"operation", "confirm_purchase",
		"items_cleared", removed,
	)
	return PurchaseResult{ItemsCleared: removed}, nil
}

// LogoutDrain returns every basket item to stock, each item's full
// remaining quantity in a single credit, with per-item drains running
// concurrently. It reports success only when every drain succeeded;
// items already drained before a failure stay drained.
func (s *Service) LogoutDrain(ctx context.Context) (DrainResult, error) {
	items, err := s.basket.ListAll(ctx)
	if err != nil {
		return DrainResult{}, err
	}
	if len(items) == 0 {
		return DrainResult{}, nil
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		drainErrs []error
		units     int
	)
	for _, item := range items {
		wg.Add(1)
		go func(item domain.BasketItem) {
			defer wg.Done()
			if err := s.drainItem(ctx, item); err != nil {
				mu.Lock()
				drainErrs = append(drainErrs, fmt.Errorf("drain basket item %s: %w", item.BasketItemID, err))
				mu.Unlock()
				return
			}
			mu.Lock()
			units += item.Quantity
			mu.Unlock()
		}(item)
	}
	wg.Wait()

	if len(drainErrs) > 0 {
		return DrainResult{}, errors.Join(drainErrs...)
	}

	s.publishEvent(ctx, ports.EventBasketDrained, map[string]any{
		"items_drained": len(items),
		"units_drained": units,
	}, "basket")
	s.logger.InfoContext(ctx, "basket drained",
		"operation", "logout_drain",
		"items_drained", len(items),
		"units_drained", units,
	)
	return DrainResult{ItemsDrained: len(items), UnitsDrained: units}, nil
}

func (s *Service) drainItem(ctx context.Context, item domain.BasketItem) error {
	if err := s.creditStock(ctx, item, item.Quantity); err != nil {
		return err
	}
	_, err := s.basket.Delete(ctx, item.BasketItemID)
	return err
}

// creditStock increments the item's source product when it still resolves,
// and otherwise recreates the stock row from the basket snapshot.
func (s *Service) creditStock(ctx context.Context, item domain.BasketItem, units int) error {
	_, found, err := s.stock.FindByID(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if found {
		_, err = s.stock.AdjustQuantity(ctx, item.ProductID, units)
		return err
	}
	_, err = s.stock.UpsertAdd(ctx, ports.AddStockParams{
		Type:       item.Type,
		Name:       item.Name,
		Quantity:   units,
		Owner:      item.Owner,
		ExpiryDate: item.ExpiryDate,
		DateAdded:  item.DateAdded,
	})
	return err
}

func (s *Service) publishEvent(ctx context.Context, eventType string, payload map[string]any, partitionKey string) {
	if s.publisher == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if pubErr := s.publisher.Publish(ctx, eventType, raw, partitionKey); pubErr != nil {
		s.logger.WarnContext(ctx, "publish event failed", "event_type", eventType, "error", pubErr)
	}
}

func toBasketItemResponse(item domain.BasketItem) BasketItemResponse {
	return BasketItemResponse{
		BasketItemID: item.BasketItemID,
		ProductID:    item.ProductID,
		Type:         item.Type,
		Name:         item.Name,
		Quantity:     item.Quantity,
		Owner:        item.Owner,
		ExpiryDate:   item.ExpiryDate,
		DateAdded:    item.DateAdded,
	}
}
