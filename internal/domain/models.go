package domain

import (
	"github.com/google/uuid"
)

// Product is a stock ledger entry. Quantity counts the units of the
// (Name, Owner) pair currently in stock; rows never persist at zero.
type Product struct {
	ProductID  uuid.UUID
	Type       string
	Name       string
	Quantity   int
	Owner      string
	ExpiryDate string
	DateAdded  string
}

// BasketItem is a basket ledger entry. ProductID points back at the stock
// row the units were drawn from; the remaining fields are a snapshot of
// that product, used to recreate it when the back reference no longer
// resolves.
type BasketItem struct {
	BasketItemID uuid.UUID
	ProductID    uuid.UUID
	Type         string
	Name         string
	Quantity     int
	Owner        string
	ExpiryDate   string
	DateAdded    string
}

type User struct {
	UserID       uuid.UUID
	Username     string
	PasswordHash string
	IsAdmin      bool
}

type Message struct {
	MessageID uuid.UUID
	Name      string
	Email     string
	Body      string
	SentAt    string
}

// Snapshot copies the product metadata carried into a basket row at
// add-to-basket time.
func (p Product) Snapshot() BasketItem {
	return BasketItem{
		ProductID:  p.ProductID,
		Type:       p.Type,
		Name:       p.Name,
		Owner:      p.Owner,
		ExpiryDate: p.ExpiryDate,
		DateAdded:  p.DateAdded,
	}
}
