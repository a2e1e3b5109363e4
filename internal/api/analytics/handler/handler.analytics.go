// Package analyticshdl - handler cho domain analytics.
package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/models"
	analyticssvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/service"
	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
)

// EventHandler xử lý API ingest và thống kê sự kiện.
type EventHandler struct {
	*basehdl.BaseHandler[models.AnalyticsEvent, dto.EventCreateInput, dto.EventUpdateInput]
	EventService *analyticssvc.EventService
}

// NewEventHandler tạo EventHandler mới.
func NewEventHandler() (*EventHandler, error) {
	svc, err := analyticssvc.NewEventService()
	if err != nil {
		return nil, fmt.Errorf("tạo EventService: %w", err)
	}
	return &EventHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.AnalyticsEvent, dto.EventCreateInput, dto.EventUpdateInput](svc),
		EventService: svc,
	}, nil
}

// HandleStats xử lý GET /analytics/stats — số liệu tổng hợp cho trang analytics.
func (h *EventHandler) HandleStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.EventService.Stats(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
