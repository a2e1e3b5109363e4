// Package dto - DTO cho domain customers.
package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/models"
)

// CustomerCreateInput dữ liệu tạo mới khách hàng.
type CustomerCreateInput struct {
	FirstName string `json:"firstName" bson:"firstName" validate:"required" maxLength:"100"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required" maxLength:"100"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" maxLength:"20"`

	Addresses []models.CustomerAddress `json:"addresses,omitempty" bson:"addresses,omitempty"`
}

// CustomerUpdateInput dữ liệu cập nhật khách hàng.
type CustomerUpdateInput struct {
	FirstName string `json:"firstName,omitempty" bson:"firstName,omitempty" maxLength:"100"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty" maxLength:"100"`
	Email     string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" maxLength:"20"`

	Addresses []models.CustomerAddress `json:"addresses,omitempty" bson:"addresses,omitempty"`

	TotalSpent    float64 `json:"totalSpent,omitempty" bson:"totalSpent,omitempty" validate:"gte=0"`
	OrderCount    int64   `json:"orderCount,omitempty" bson:"orderCount,omitempty" validate:"gte=0"`
	LastOrderDate int64   `json:"lastOrderDate,omitempty" bson:"lastOrderDate,omitempty"`
}

// SubscriberCreateInput dữ liệu đăng ký nhận tin.
type SubscriberCreateInput struct {
	Email  string `json:"email" bson:"email" validate:"required,email"`
	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=subscribed unsubscribed"`
}

// SubscriberUpdateInput dữ liệu cập nhật trạng thái đăng ký.
type SubscriberUpdateInput struct {
	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=subscribed unsubscribed"`
}
