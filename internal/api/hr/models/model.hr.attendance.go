package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái chấm công trong ngày
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusHalfDay = "half_day"
	AttendanceStatusOnLeave = "on_leave"
)

// Attendance lưu chấm công (collection attendances).
// Mỗi nhân viên chỉ có một bản ghi cho mỗi ngày — đảm bảo bằng unique compound index (employeeId, date).
// Date luôn là 00:00:00 UTC của ngày chấm công (đã truncate).
type Attendance struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	EmployeeId primitive.ObjectID `json:"employeeId" bson:"employeeId" index:"single:1,compound:attendance_employee_date_unique"`
	Date       int64              `json:"date" bson:"date" index:"compound:attendance_employee_date_unique"`

	CheckIn  int64 `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut int64 `json:"checkOut,omitempty" bson:"checkOut,omitempty"`

	Status string `json:"status" bson:"status" default:"present"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`

	// Số giờ làm, suy ra từ CheckIn/CheckOut khi có đủ cả hai
	HoursWorked float64 `json:"hoursWorked,omitempty" bson:"hoursWorked,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
