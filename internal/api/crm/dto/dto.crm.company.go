// Package dto - DTO cho domain crm.
package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
)

// CompanyCreateInput dữ liệu tạo mới công ty.
// Client có thể gửi một liên hệ phẳng qua field contact — sẽ được gói thành contacts[0].
type CompanyCreateInput struct {
	Name      string `json:"name" bson:"name" validate:"required" maxLength:"200"`
	Industry  string `json:"industry,omitempty" bson:"industry,omitempty" maxLength:"100"`
	Location  string `json:"location,omitempty" bson:"location,omitempty" maxLength:"200"`
	Valuation string `json:"valuation,omitempty" bson:"valuation,omitempty" maxLength:"50"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=prospect mql sql won lost"`
	Stage  string `json:"stage,omitempty" bson:"stage,omitempty" validate:"omitempty,oneof='Lead' 'MQL' 'MAL' 'SAL' 'Deal Won' 'Repeat Client'"`

	Contact  *models.CompanyContact  `json:"contact,omitempty" bson:"-"`
	Contacts []models.CompanyContact `json:"contacts,omitempty" bson:"contacts,omitempty"`

	Notes        []string                   `json:"notes,omitempty" bson:"notes,omitempty"`
	EmailHistory []models.EmailHistoryEntry `json:"emailHistory,omitempty" bson:"emailHistory,omitempty"`
	Links        []string                   `json:"links,omitempty" bson:"links,omitempty"`

	Logo               string `json:"logo,omitempty" bson:"logo,omitempty"`
	AssignedEmployeeId string `json:"assignedEmployeeId,omitempty" bson:"assignedEmployeeId,omitempty" transform:"str_objectid_ptr,optional"`
}

// CompanyUpdateInput dữ liệu cập nhật công ty (đổi stage khi kéo thả kanban, thêm note...).
type CompanyUpdateInput struct {
	Name      string `json:"name,omitempty" bson:"name,omitempty" maxLength:"200"`
	Industry  string `json:"industry,omitempty" bson:"industry,omitempty" maxLength:"100"`
	Location  string `json:"location,omitempty" bson:"location,omitempty" maxLength:"200"`
	Valuation string `json:"valuation,omitempty" bson:"valuation,omitempty" maxLength:"50"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=prospect mql sql won lost"`
	Stage  string `json:"stage,omitempty" bson:"stage,omitempty" validate:"omitempty,oneof='Lead' 'MQL' 'MAL' 'SAL' 'Deal Won' 'Repeat Client'"`

	Contacts []models.CompanyContact `json:"contacts,omitempty" bson:"contacts,omitempty"`

	Notes        []string                   `json:"notes,omitempty" bson:"notes,omitempty"`
	EmailHistory []models.EmailHistoryEntry `json:"emailHistory,omitempty" bson:"emailHistory,omitempty"`
	Links        []string                   `json:"links,omitempty" bson:"links,omitempty"`

	Logo               string `json:"logo,omitempty" bson:"logo,omitempty"`
	AssignedEmployeeId string `json:"assignedEmployeeId,omitempty" bson:"assignedEmployeeId,omitempty" transform:"str_objectid_ptr,optional"`
}

// CompanyEmployeeRef thông tin rút gọn của nhân viên phụ trách.
type CompanyEmployeeRef struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// CompanyDetail công ty kèm nhân viên phụ trách đã populate.
type CompanyDetail struct {
	models.Company   `bson:",inline"`
	AssignedEmployee *CompanyEmployeeRef `json:"assignedEmployee,omitempty" bson:"assignedEmployee,omitempty"`
}
