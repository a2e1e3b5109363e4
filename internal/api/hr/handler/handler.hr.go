// Package hrhdl - handler cho domain hr.
package hrhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/models"
	hrsvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/service"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/logger"
)

// EmployeeHandler xử lý API nhân viên. Toàn bộ CRUD đi qua BaseHandler.
type EmployeeHandler struct {
	*basehdl.BaseHandler[models.Employee, dto.EmployeeCreateInput, dto.EmployeeUpdateInput]
	EmployeeService *hrsvc.EmployeeService
}

// NewEmployeeHandler tạo EmployeeHandler mới.
func NewEmployeeHandler() (*EmployeeHandler, error) {
	svc, err := hrsvc.NewEmployeeService()
	if err != nil {
		return nil, fmt.Errorf("tạo EmployeeService: %w", err)
	}
	return &EmployeeHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Employee, dto.EmployeeCreateInput, dto.EmployeeUpdateInput](svc),
		EmployeeService: svc,
	}, nil
}

// AttendanceHandler xử lý API chấm công.
type AttendanceHandler struct {
	*basehdl.BaseHandler[models.Attendance, dto.AttendanceCreateInput, dto.AttendanceUpdateInput]
	AttendanceService *hrsvc.AttendanceService
}

// NewAttendanceHandler tạo AttendanceHandler mới.
func NewAttendanceHandler() (*AttendanceHandler, error) {
	svc, err := hrsvc.NewAttendanceService()
	if err != nil {
		return nil, fmt.Errorf("tạo AttendanceService: %w", err)
	}
	return &AttendanceHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Attendance, dto.AttendanceCreateInput, dto.AttendanceUpdateInput](svc),
		AttendanceService: svc,
	}, nil
}

// HandleCheckIn xử lý POST /attendances/check-in — upsert chấm công theo (employeeId, ngày).
func (h *AttendanceHandler) HandleCheckIn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.AttendanceCheckInInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.AttendanceService.CheckIn(c.Context(), &input)
		if err == nil {
			logger.LogAction("attendance_check_in", c, map[string]interface{}{
				"employeeId": input.EmployeeId,
				"date":       data.Date,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListWithEmployee xử lý GET /attendances/list — bản ghi chấm công kèm nhân viên populate.
// Query: employeeId, startDate, endDate (unix ms).
func (h *AttendanceHandler) HandleListWithEmployee(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		startDate, _ := strconv.ParseInt(c.Query("startDate"), 10, 64)
		endDate, _ := strconv.ParseInt(c.Query("endDate"), 10, 64)
		data, err := h.AttendanceService.FindWithEmployee(c.Context(), c.Query("employeeId"), startDate, endDate)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleReport xử lý GET /attendances/report?month=YYYY-MM — báo cáo chấm công tháng.
func (h *AttendanceHandler) HandleReport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.AttendanceService.MonthlyReport(c.Context(), c.Query("month"))
		h.HandleResponse(c, data, err)
		return nil
	})
}
