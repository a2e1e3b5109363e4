package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phân loại liên hệ CRM
const (
	ContactTypeLead    = "Lead"
	ContactTypeClient  = "Client"
	ContactTypePartner = "Partner"
	ContactTypeOther   = "Other"
)

// Trạng thái liên hệ CRM
const (
	ContactStatusActive   = "Active"
	ContactStatusInactive = "Inactive"
)

// Contact lưu liên hệ CRM (collection contacts).
// Company ở đây là tên công ty dạng chữ, không tham chiếu collection companies.
type Contact struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email" index:"unique"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`

	Company string `json:"company,omitempty" bson:"company,omitempty"`
	Role    string `json:"role,omitempty" bson:"role,omitempty"`

	Type   string `json:"type" bson:"type" default:"Lead"`
	Status string `json:"status" bson:"status" default:"Active"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
