// Package dto - DTO cho domain catalog.
package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/models"
)

// ProductCreateInput dữ liệu tạo mới sản phẩm.
type ProductCreateInput struct {
	Name        string   `json:"name" bson:"name" validate:"required" maxLength:"200"`
	Slug        string   `json:"slug" bson:"slug" validate:"required" maxLength:"200"`
	SKU         string   `json:"sku" bson:"sku" validate:"required" maxLength:"100"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Features    []string `json:"features,omitempty" bson:"features,omitempty"`

	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
	Currency  string  `json:"currency,omitempty" bson:"currency,omitempty"`
	SalePrice float64 `json:"salePrice,omitempty" bson:"salePrice,omitempty" validate:"gte=0"`
	CostPrice float64 `json:"costPrice,omitempty" bson:"costPrice,omitempty" validate:"gte=0"`

	Stock   int64 `json:"stock" bson:"stock" validate:"gte=0"`
	InStock bool  `json:"inStock" bson:"inStock"`

	CategoryId string `json:"categoryId" bson:"categoryId" validate:"required" transform:"str_objectid"`

	Images         []string          `json:"images,omitempty" bson:"images,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`

	IsPublished bool `json:"isPublished" bson:"isPublished"`
	IsFeatured  bool `json:"isFeatured" bson:"isFeatured"`
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm. Mọi field đều tùy chọn.
type ProductUpdateInput struct {
	Name        string   `json:"name,omitempty" bson:"name,omitempty" maxLength:"200"`
	Slug        string   `json:"slug,omitempty" bson:"slug,omitempty" maxLength:"200"`
	SKU         string   `json:"sku,omitempty" bson:"sku,omitempty" maxLength:"100"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Features    []string `json:"features,omitempty" bson:"features,omitempty"`

	Price     float64 `json:"price,omitempty" bson:"price,omitempty" validate:"gte=0"`
	Currency  string  `json:"currency,omitempty" bson:"currency,omitempty"`
	SalePrice float64 `json:"salePrice,omitempty" bson:"salePrice,omitempty" validate:"gte=0"`
	CostPrice float64 `json:"costPrice,omitempty" bson:"costPrice,omitempty" validate:"gte=0"`

	Stock   int64 `json:"stock,omitempty" bson:"stock,omitempty" validate:"gte=0"`
	InStock bool  `json:"inStock,omitempty" bson:"inStock,omitempty"`

	CategoryId string `json:"categoryId,omitempty" bson:"categoryId,omitempty" transform:"str_objectid,optional"`

	Images         []string          `json:"images,omitempty" bson:"images,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`

	IsPublished bool `json:"isPublished,omitempty" bson:"isPublished,omitempty"`
	IsFeatured  bool `json:"isFeatured,omitempty" bson:"isFeatured,omitempty"`
}

// ProductCategoryRef thông tin rút gọn của danh mục kèm theo sản phẩm.
type ProductCategoryRef struct {
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}

// ProductWithCategory sản phẩm kèm danh mục đã populate (kết quả $lookup).
type ProductWithCategory struct {
	models.Product `bson:",inline"`
	Category       *ProductCategoryRef `json:"category,omitempty" bson:"category,omitempty"`
}
