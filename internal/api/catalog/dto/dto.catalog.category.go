package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/models"
)

// CategoryCreateInput dữ liệu tạo mới danh mục.
type CategoryCreateInput struct {
	Name        string `json:"name" bson:"name" validate:"required" maxLength:"200"`
	Slug        string `json:"slug" bson:"slug" validate:"required" maxLength:"200"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ParentId    string `json:"parentId,omitempty" bson:"parentId,omitempty" transform:"str_objectid_ptr,optional"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    bool   `json:"isActive" bson:"isActive"`
}

// CategoryUpdateInput dữ liệu cập nhật danh mục.
type CategoryUpdateInput struct {
	Name        string `json:"name,omitempty" bson:"name,omitempty" maxLength:"200"`
	Slug        string `json:"slug,omitempty" bson:"slug,omitempty" maxLength:"200"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	ParentId    string `json:"parentId,omitempty" bson:"parentId,omitempty" transform:"str_objectid_ptr,optional"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// CategoryParentRef thông tin rút gọn của danh mục cha.
type CategoryParentRef struct {
	Name string `json:"name" bson:"name"`
}

// CategoryWithParent danh mục kèm tên danh mục cha đã populate.
type CategoryWithParent struct {
	models.Category `bson:",inline"`
	Parent          *CategoryParentRef `json:"parent,omitempty" bson:"parent,omitempty"`
}
