package postgres

import (
	"github.com/freshpantry/stockroom/internal/domain"
)

func toDomainProduct(rec productModel) domain.Product {
	return domain.Product{
		ProductID:  rec.ProductID,
		Type:       rec.Type,
		Name:       rec.Name,
		Quantity:   rec.Quantity,
		Owner:      rec.Owner,
		ExpiryDate: rec.ExpiryDate,
		DateAdded:  rec.DateAdded,
	}
}

func toDomainProducts(recs []productModel) []domain.Product {
	out := make([]domain.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainProduct(rec))
	}
	return out
}

func toDomainBasketItem(rec basketItemModel) domain.BasketItem {
	return domain.BasketItem{
		BasketItemID: rec.BasketItemID,
		ProductID:    rec.ProductID,
		Type:         rec.Type,
		Name:         rec.Name,
		Quantity:     rec.Quantity,
		Owner:        rec.Owner,
		ExpiryDate:   rec.ExpiryDate,
		DateAdded:    rec.DateAdded,
	}
}

func toDomainUser(rec userModel) domain.User {
	return domain.User{
		UserID:       rec.UserID,
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		IsAdmin:      rec.IsAdmin,
	}
}

func toDomainMessage(rec messageModel) domain.Message {
	return domain.Message{
		MessageID: rec.MessageID,
		Name:      rec.Name,
		Email:     rec.Email,
		Body:      rec.Body,
		SentAt:    rec.SentAt,
	}
}
