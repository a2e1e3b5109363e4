package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category lưu danh mục sản phẩm (collection categories).
// Danh mục có thể lồng nhau qua parentId; không cho xóa danh mục còn danh mục con.
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name"`
	Slug        string `json:"slug" bson:"slug" index:"unique"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Danh mục cha — nil nếu là danh mục gốc
	ParentId *primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty" index:"single:1"`

	Image    string `json:"image,omitempty" bson:"image,omitempty"`
	IsActive bool   `json:"isActive" bson:"isActive" default:"true"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Ràng buộc xóa: chặn xóa khi còn danh mục con trỏ tới qua parentId
	_Relationships struct{} `relationship:"collection:categories,field:parentId,message:Cannot delete category with sub-categories"`
}
