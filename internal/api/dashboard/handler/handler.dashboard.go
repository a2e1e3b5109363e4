// Package dashboardhdl - handler cho trang dashboard tổng hợp.
package dashboardhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dashboardsvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/dashboard/service"
)

// DashboardHandler xử lý API dashboard, không gắn với một collection cụ thể.
type DashboardHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	DashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo DashboardHandler mới.
func NewDashboardHandler() (*DashboardHandler, error) {
	svc, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("tạo DashboardService: %w", err)
	}
	return &DashboardHandler{
		BaseHandler:      &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		DashboardService: svc,
	}, nil
}

// HandleOverview xử lý GET /dashboard — toàn bộ số liệu trang tổng quan.
func (h *DashboardHandler) HandleOverview(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.DashboardService.Overview(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
