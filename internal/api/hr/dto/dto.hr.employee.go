// Package dto - DTO cho domain hr.
package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/models"
)

// EmployeeCreateInput dữ liệu tạo mới nhân viên.
type EmployeeCreateInput struct {
	FirstName string `json:"firstName" bson:"firstName" validate:"required" maxLength:"100"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required" maxLength:"100"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" maxLength:"20"`

	Role       string  `json:"role" bson:"role" validate:"required" maxLength:"100"`
	Department string  `json:"department" bson:"department" validate:"required" maxLength:"100"`
	HireDate   string  `json:"hireDate,omitempty" bson:"hireDate,omitempty" transform:"str_time,format=2006-01-02,optional"`
	Salary     float64 `json:"salary,omitempty" bson:"salary,omitempty" validate:"gte=0"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`

	Avatar  string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	EmergencyContact *models.EmergencyContact `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
}

// EmployeeUpdateInput dữ liệu cập nhật nhân viên.
type EmployeeUpdateInput struct {
	FirstName string `json:"firstName,omitempty" bson:"firstName,omitempty" maxLength:"100"`
	LastName  string `json:"lastName,omitempty" bson:"lastName,omitempty" maxLength:"100"`
	Email     string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty" maxLength:"20"`

	Role       string  `json:"role,omitempty" bson:"role,omitempty" maxLength:"100"`
	Department string  `json:"department,omitempty" bson:"department,omitempty" maxLength:"100"`
	HireDate   string  `json:"hireDate,omitempty" bson:"hireDate,omitempty" transform:"str_time,format=2006-01-02,optional"`
	Salary     float64 `json:"salary,omitempty" bson:"salary,omitempty" validate:"gte=0"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`

	Avatar  string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	EmergencyContact *models.EmergencyContact `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
}
