// Package models - model thuộc domain orders (orders).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái xử lý đơn hàng
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Trạng thái thanh toán
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// OrderItem một dòng hàng trong đơn. Total = Quantity * Price, do client tính.
type OrderItem struct {
	ProductId primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Quantity  int64              `json:"quantity" bson:"quantity"`
	Price     float64            `json:"price" bson:"price"`
	Total     float64            `json:"total" bson:"total"`
}

// OrderAddress địa chỉ giao hàng.
type OrderAddress struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

// Order lưu đơn hàng (collection orders).
// Tổng tiền: Total = Subtotal + Tax + ShippingCost — hệ thống không tự tính lại, nhận từ client.
type Order struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	OrderNumber string             `json:"orderNumber" bson:"orderNumber" index:"unique"`
	CustomerId  primitive.ObjectID `json:"customerId" bson:"customerId" index:"single:1"`

	Items []OrderItem `json:"items" bson:"items"`

	Subtotal     float64 `json:"subtotal" bson:"subtotal"`
	Tax          float64 `json:"tax" bson:"tax"`
	ShippingCost float64 `json:"shippingCost" bson:"shippingCost"`
	Total        float64 `json:"total" bson:"total"`

	Status        string `json:"status" bson:"status" default:"pending"`
	PaymentStatus string `json:"paymentStatus" bson:"paymentStatus" default:"pending"`

	ShippingAddress OrderAddress `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	Notes           string       `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
