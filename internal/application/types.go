package application

import "github.com/google/uuid"

type AddStockEntryRequest struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`
}

type ProductResponse struct {
	ProductID  uuid.UUID `json:"product_id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Owner      string    `json:"owner"`
	ExpiryDate string    `json:"expiry_date"`
	DateAdded  string    `json:"date_added"`
}

type BasketItemResponse struct {
	BasketItemID uuid.UUID `json:"basket_item_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	Owner        string    `json:"owner"`
	ExpiryDate   string    `json:"expiry_date"`
	DateAdded    string    `json:"date_added"`
}

type DrainResult struct {
	ItemsDrained int `json:"items_drained"`
	UnitsDrained int `json:"units_drained"`
}

type PurchaseResult struct {
	ItemsCleared int64 `json:"items_cleared"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type UserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"is_admin"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
}

type SendMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type MessageResponse struct {
	MessageID uuid.UUID `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	SentAt    string    `json:"sent_at"`
}
