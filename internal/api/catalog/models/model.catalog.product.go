// Package models - các model thuộc domain catalog (products, categories).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lưu thông tin sản phẩm bán trên cửa hàng (collection products).
// Slug và SKU là duy nhất trên toàn hệ thống.
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string   `json:"name" bson:"name" index:"text"`
	Slug        string   `json:"slug" bson:"slug" index:"unique"`
	SKU         string   `json:"sku" bson:"sku" index:"unique"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Features    []string `json:"features,omitempty" bson:"features,omitempty"`

	// Giá bán
	Price     float64 `json:"price" bson:"price"`
	Currency  string  `json:"currency" bson:"currency" default:"SAR"`
	SalePrice float64 `json:"salePrice,omitempty" bson:"salePrice,omitempty"`
	CostPrice float64 `json:"costPrice,omitempty" bson:"costPrice,omitempty"`

	// Tồn kho
	Stock   int64 `json:"stock" bson:"stock"`
	InStock bool  `json:"inStock" bson:"inStock" default:"true"`

	// Danh mục — tham chiếu tới collection categories
	CategoryId primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single:1"`

	Images         []string          `json:"images,omitempty" bson:"images,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`

	IsPublished bool `json:"isPublished" bson:"isPublished"`
	IsFeatured  bool `json:"isFeatured" bson:"isFeatured"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
