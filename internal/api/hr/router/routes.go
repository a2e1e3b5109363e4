// Package router đăng ký các route thuộc domain hr: employees, attendances.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	hrhdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/handler"
	apirouter "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/router"
)

// Register đăng ký tất cả route hr lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	employeeHandler, err := hrhdl.NewEmployeeHandler()
	if err != nil {
		return fmt.Errorf("tạo EmployeeHandler: %w", err)
	}
	attendanceHandler, err := hrhdl.NewAttendanceHandler()
	if err != nil {
		return fmt.Errorf("tạo AttendanceHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/employees", employeeHandler, apirouter.ReadWriteConfig)

	// POST /attendances/check-in — upsert chấm công theo (employeeId, ngày)
	apirouter.RegisterRouteWithMiddleware(v1, "/attendances", "POST", "/check-in", nil, attendanceHandler.HandleCheckIn)
	// GET /attendances/list — danh sách chấm công kèm nhân viên populate
	apirouter.RegisterRouteWithMiddleware(v1, "/attendances", "GET", "/list", nil, attendanceHandler.HandleListWithEmployee)
	// GET /attendances/report — báo cáo chấm công theo tháng
	apirouter.RegisterRouteWithMiddleware(v1, "/attendances", "GET", "/report", nil, attendanceHandler.HandleReport)
	r.RegisterCRUDRoutes(v1, "/attendances", attendanceHandler, apirouter.ReadWriteConfig)

	return nil
}
