package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/models"
)

// AttendanceCreateInput dữ liệu tạo mới bản ghi chấm công (insert thẳng, không upsert).
type AttendanceCreateInput struct {
	EmployeeId string `json:"employeeId" bson:"employeeId" validate:"required" transform:"str_objectid"`
	Date       int64  `json:"date" bson:"date" validate:"required"`

	CheckIn  int64 `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut int64 `json:"checkOut,omitempty" bson:"checkOut,omitempty"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=present absent late half_day on_leave"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty" maxLength:"500"`
}

// AttendanceUpdateInput dữ liệu cập nhật bản ghi chấm công.
type AttendanceUpdateInput struct {
	CheckIn  int64 `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut int64 `json:"checkOut,omitempty" bson:"checkOut,omitempty"`

	Status string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=present absent late half_day on_leave"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty" maxLength:"500"`
}

// AttendanceCheckInInput dữ liệu chấm công theo ngày (POST /attendances/check-in).
// Date và CheckIn/CheckOut là unix milliseconds; Date được truncate về 00:00 UTC phía server.
type AttendanceCheckInInput struct {
	EmployeeId string `json:"employeeId" validate:"required"`
	Date       int64  `json:"date" validate:"required"`

	CheckIn  int64 `json:"checkIn,omitempty"`
	CheckOut int64 `json:"checkOut,omitempty"`

	Status string `json:"status,omitempty" validate:"omitempty,oneof=present absent late half_day on_leave"`
	Notes  string `json:"notes,omitempty" maxLength:"500"`
}

// AttendanceEmployeeRef thông tin nhân viên rút gọn kèm theo bản ghi chấm công.
type AttendanceEmployeeRef struct {
	FirstName  string `json:"firstName" bson:"firstName"`
	LastName   string `json:"lastName" bson:"lastName"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
	Role       string `json:"role,omitempty" bson:"role,omitempty"`
}

// AttendanceWithEmployee bản ghi chấm công kèm nhân viên đã populate.
type AttendanceWithEmployee struct {
	models.Attendance `bson:",inline"`
	Employee          *AttendanceEmployeeRef `json:"employee,omitempty" bson:"employee,omitempty"`
}

// AttendanceStats thống kê chấm công của một nhân viên trong tháng báo cáo.
type AttendanceStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfDay"`
	OnLeave int `json:"onLeave"`

	// TotalDays = present + late + halfDay (ngày có đi làm)
	TotalDays  int     `json:"totalDays"`
	TotalHours float64 `json:"totalHours"`

	// AttendanceRate = round(100 * (present+late+halfDay) / max(1, tổng bản ghi)), luôn trong [0,100]
	AttendanceRate int `json:"attendanceRate"`
}

// EmployeeReportRef thông tin nhân viên trong báo cáo chấm công.
type EmployeeReportRef struct {
	ID         primitive.ObjectID `json:"_id"`
	Name       string             `json:"name"`
	Department string             `json:"department"`
	Role       string             `json:"role"`
}

// EmployeeAttendanceReport báo cáo chấm công của một nhân viên.
type EmployeeAttendanceReport struct {
	Employee EmployeeReportRef `json:"employee"`
	Stats    AttendanceStats   `json:"stats"`
}

// AttendanceReportSummary tổng hợp toàn bộ báo cáo tháng.
type AttendanceReportSummary struct {
	EmployeeCount     int     `json:"employeeCount"`
	AvgAttendanceRate float64 `json:"avgAttendanceRate"`
	TotalHours        float64 `json:"totalHours"`
}

// AttendanceReportResponse kết quả GET /attendances/report.
type AttendanceReportResponse struct {
	Month     string                     `json:"month"`
	StartDate int64                      `json:"startDate"`
	EndDate   int64                      `json:"endDate"`
	Report    []EmployeeAttendanceReport `json:"report"`
	Summary   AttendanceReportSummary    `json:"summary"`
}
