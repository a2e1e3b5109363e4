package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactCreateInput dữ liệu tạo mới liên hệ CRM.
type ContactCreateInput struct {
	FirstName string `json:"firstName" bson:"firstName" validate:"required" maxLength:"100"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required" maxLength:"100"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" maxLength:"20"`

	Company string `json:"company,omitempty" bson:"company,omitempty" maxLength:"200"`
	Role    string `json:"role,omitempty" bson:"role,omitempty" maxLength:"100"`

	Type   string `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,oneof=Lead Client Partner Other"`
	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty" maxLength:"2000"`
}

// ContactUpdateInput dữ liệu cập nhật liên hệ CRM.
type ContactUpdateInput struct {
	FirstName string `json:"firstName,omitempty" bson:"firstName,omitempty" maxLength:"100"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty" maxLength:"100"`
	Email     string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" maxLength:"20"`

	Company string `json:"company,omitempty" bson:"company,omitempty" maxLength:"200"`
	Role    string `json:"role,omitempty" bson:"role,omitempty" maxLength:"100"`

	Type   string `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,oneof=Lead Client Partner Other"`
	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty" maxLength:"2000"`
}

// Nguồn của một liên hệ trong danh sách hợp nhất
const (
	ContactSourceCrm        = "CRM"
	ContactSourceStore      = "Store"
	ContactSourceNewsletter = "Newsletter"
)

// UnifiedContact một liên hệ trong danh sách hợp nhất từ ba nguồn:
// liên hệ CRM, khách hàng cửa hàng và người đăng ký nhận tin.
type UnifiedContact struct {
	ID        primitive.ObjectID `json:"_id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Company   string             `json:"company,omitempty"`
	Role      string             `json:"role,omitempty"`
	Type      string             `json:"type"`
	Status    string             `json:"status"`
	Source    string             `json:"source"`
	CreatedAt int64              `json:"createdAt"`
}

// UnifiedContactsResponse kết quả GET /contacts/unified.
// Count luôn bằng tổng số liên hệ của cả ba nguồn.
type UnifiedContactsResponse struct {
	Contacts []UnifiedContact `json:"contacts"`
	Count    int              `json:"count"`
}
