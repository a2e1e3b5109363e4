package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	crmsvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/service"
)

// OutreachHandler xử lý API outreach theo tháng.
type OutreachHandler struct {
	*basehdl.BaseHandler[models.Outreach, dto.OutreachCreateInput, dto.OutreachUpdateInput]
	OutreachService *crmsvc.OutreachService
}

// NewOutreachHandler tạo OutreachHandler mới.
func NewOutreachHandler() (*OutreachHandler, error) {
	svc, err := crmsvc.NewOutreachService()
	if err != nil {
		return nil, fmt.Errorf("tạo OutreachService: %w", err)
	}
	return &OutreachHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Outreach, dto.OutreachCreateInput, dto.OutreachUpdateInput](svc),
		OutreachService: svc,
	}, nil
}

// HandleListWithRefs xử lý GET /outreaches/list — danh sách outreach kèm công ty và nhân viên populate.
// Query: month=YYYY-MM, employeeId (đều tùy chọn).
func (h *OutreachHandler) HandleListWithRefs(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.OutreachService.FindWithRefs(c.Context(), c.Query("month"), c.Query("employeeId"))
		h.HandleResponse(c, data, err)
		return nil
	})
}
