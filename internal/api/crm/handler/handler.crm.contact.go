package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	crmsvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/service"
)

// ContactHandler xử lý API liên hệ CRM.
type ContactHandler struct {
	*basehdl.BaseHandler[models.Contact, dto.ContactCreateInput, dto.ContactUpdateInput]
	ContactService *crmsvc.ContactService
}

// NewContactHandler tạo ContactHandler mới.
func NewContactHandler() (*ContactHandler, error) {
	svc, err := crmsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	return &ContactHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Contact, dto.ContactCreateInput, dto.ContactUpdateInput](svc),
		ContactService: svc,
	}, nil
}

// HandleUnified xử lý GET /contacts/unified — danh sách liên hệ hợp nhất từ ba nguồn.
func (h *ContactHandler) HandleUnified(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.ContactService.FindUnified(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
