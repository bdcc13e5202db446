package postgres

import (
	"github.com/google/uuid"
)

type productModel struct {
	ProductID  uuid.UUID `gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Type       string    `gorm:"column:type"`
	Name       string    `gorm:"column:name"`
	Quantity   int       `gorm:"column:quantity"`
	Owner      string    `gorm:"column:owner"`
	ExpiryDate string    `gorm:"column:expiry_date"`
	DateAdded  string    `gorm:"column:date_added"`
}

func (productModel) TableName() string { return "products" }

type basketItemModel struct {
	BasketItemID uuid.UUID `gorm:"column:basket_item_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID `gorm:"column:product_id"`
	Type         string    `gorm:"column:type"`
	Name         string    `gorm:"column:name"`
	Quantity     int       `gorm:"column:quantity"`
	Owner        string    `gorm:"column:owner"`
	ExpiryDate   string    `gorm:"column:expiry_date"`
	DateAdded    string    `gorm:"column:date_added"`
}

func (basketItemModel) TableName() string { return "basket_items" }

type userModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string    `gorm:"column:username"`
	PasswordHash string    `gorm:"column:password_hash"`
	IsAdmin      bool      `gorm:"column:is_admin"`
}

func (userModel) TableName() string { return "users" }

type messageModel struct {
	MessageID uuid.UUID `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Body      string    `gorm:"column:body"`
	SentAt    string    `gorm:"column:sent_at"`
}

func (messageModel) TableName() string { return "messages" }
