// Package dto - DTO cho domain orders.
package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/models"
)

// OrderCreateInput dữ liệu tạo mới đơn hàng.
type OrderCreateInput struct {
	OrderNumber string `json:"orderNumber" bson:"orderNumber" validate:"required" maxLength:"50"`
	CustomerId  string `json:"customerId" bson:"customerId" validate:"required" transform:"str_objectid"`

	Items []models.OrderItem `json:"items" bson:"items" validate:"required,min=1,dive"`

	Subtotal     float64 `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Tax          float64 `json:"tax" bson:"tax" validate:"gte=0"`
	ShippingCost float64 `json:"shippingCost" bson:"shippingCost" validate:"gte=0"`
	Total        float64 `json:"total" bson:"total" validate:"gte=0"`

	Status        string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending processing shipped delivered cancelled refunded"`
	PaymentStatus string `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty" validate:"omitempty,oneof=pending paid failed refunded"`

	ShippingAddress models.OrderAddress `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	Notes           string              `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderUpdateInput dữ liệu cập nhật đơn hàng. Chủ yếu dùng đổi trạng thái.
type OrderUpdateInput struct {
	Status        string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending processing shipped delivered cancelled refunded"`
	PaymentStatus string `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty" validate:"omitempty,oneof=pending paid failed refunded"`

	Items []models.OrderItem `json:"items,omitempty" bson:"items,omitempty"`

	Subtotal     float64 `json:"subtotal,omitempty" bson:"subtotal,omitempty" validate:"gte=0"`
	Tax          float64 `json:"tax,omitempty" bson:"tax,omitempty" validate:"gte=0"`
	ShippingCost float64 `json:"shippingCost,omitempty" bson:"shippingCost,omitempty" validate:"gte=0"`
	Total        float64 `json:"total,omitempty" bson:"total,omitempty" validate:"gte=0"`

	ShippingAddress models.OrderAddress `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	Notes           string              `json:"notes,omitempty" bson:"notes,omitempty"`
}

// OrderUpdateByBodyInput dữ liệu cập nhật đơn hàng theo _id nằm trong body (PUT /orders/update).
type OrderUpdateByBodyInput struct {
	ID string `json:"_id" validate:"required"`
	OrderUpdateInput
}

// OrderCustomerRef thông tin khách hàng rút gọn kèm theo đơn.
type OrderCustomerRef struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
}

// OrderWithCustomer đơn hàng kèm khách hàng đã populate.
type OrderWithCustomer struct {
	models.Order `bson:",inline"`
	Customer     *OrderCustomerRef `json:"customer,omitempty" bson:"customer,omitempty"`
}
