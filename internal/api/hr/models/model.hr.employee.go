// Package models - các model thuộc domain hr (employees, attendances).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái làm việc của nhân viên
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusOnLeave  = "on_leave"
)

// EmergencyContact người liên hệ khẩn cấp của nhân viên.
type EmergencyContact struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Relation string `json:"relation,omitempty" bson:"relation,omitempty"`
}

// Employee lưu nhân viên (collection employees).
type Employee struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email" index:"unique"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`

	Role       string `json:"role" bson:"role"`
	Department string `json:"department" bson:"department" index:"single:1"`
	HireDate   int64  `json:"hireDate,omitempty" bson:"hireDate,omitempty"`
	Salary     float64 `json:"salary,omitempty" bson:"salary,omitempty"`

	Status string `json:"status" bson:"status" default:"active"`

	Avatar  string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Ràng buộc xóa: chặn xóa nhân viên còn bản ghi chấm công hoặc outreach tham chiếu
	_Relationships struct{} `relationship:"collection:attendances,field:employeeId,message:Không thể xóa nhân viên vì còn %d bản ghi chấm công|collection:outreaches,field:employeeId,message:Không thể xóa nhân viên vì còn %d hoạt động outreach"`
}
