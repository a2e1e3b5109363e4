// Package models - các model thuộc domain customers (customers, subscribers).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerAddress địa chỉ của khách hàng (billing hoặc shipping).
type CustomerAddress struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Zip     string `json:"zip,omitempty" bson:"zip,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
	Type    string `json:"type,omitempty" bson:"type,omitempty"` // billing | shipping
}

// Customer lưu khách hàng cửa hàng (collection customers).
// TotalSpent/OrderCount/LastOrderDate là counter denormalize, cập nhật khi tạo đơn,
// không được tính lại từ orders — có thể lệch so với tổng thật theo thời gian.
type Customer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email" index:"unique"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`

	Addresses []CustomerAddress `json:"addresses,omitempty" bson:"addresses,omitempty"`

	TotalSpent    float64 `json:"totalSpent" bson:"totalSpent"`
	OrderCount    int64   `json:"orderCount" bson:"orderCount"`
	LastOrderDate int64   `json:"lastOrderDate,omitempty" bson:"lastOrderDate,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
