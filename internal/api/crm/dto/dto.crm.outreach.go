package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
)

// OutreachCreateInput dữ liệu tạo mới chiến dịch outreach.
// Month dạng "YYYY-MM", được chuyển thành mốc đầu tháng (unix ms).
type OutreachCreateInput struct {
	CompanyId  string `json:"companyId" bson:"companyId" validate:"required" transform:"str_objectid"`
	EmployeeId string `json:"employeeId" bson:"employeeId" validate:"required" transform:"str_objectid"`
	Month      string `json:"month" bson:"month" validate:"required" transform:"str_time,format=2006-01"`

	Activities []models.OutreachActivity `json:"activities,omitempty" bson:"activities,omitempty"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active completed paused"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty" maxLength:"2000"`
}

// OutreachUpdateInput dữ liệu cập nhật chiến dịch outreach.
type OutreachUpdateInput struct {
	Activities []models.OutreachActivity `json:"activities,omitempty" bson:"activities,omitempty"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=active completed paused"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty" maxLength:"2000"`
}

// OutreachCompanyRef thông tin công ty rút gọn kèm theo outreach.
type OutreachCompanyRef struct {
	Name     string `json:"name" bson:"name"`
	Industry string `json:"industry,omitempty" bson:"industry,omitempty"`
}

// OutreachEmployeeRef thông tin nhân viên rút gọn kèm theo outreach.
type OutreachEmployeeRef struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// OutreachWithRefs chiến dịch outreach kèm công ty và nhân viên đã populate.
type OutreachWithRefs struct {
	models.Outreach `bson:",inline"`
	Company         *OutreachCompanyRef  `json:"company,omitempty" bson:"company,omitempty"`
	Employee        *OutreachEmployeeRef `json:"employee,omitempty" bson:"employee,omitempty"`
}
