// Package crmhdl - handler cho domain crm.
package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	crmsvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/service"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/logger"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/utility"
)

// CompanyHandler xử lý API công ty CRM.
type CompanyHandler struct {
	*basehdl.BaseHandler[models.Company, dto.CompanyCreateInput, dto.CompanyUpdateInput]
	CompanyService *crmsvc.CompanyService
}

// NewCompanyHandler tạo CompanyHandler mới.
func NewCompanyHandler() (*CompanyHandler, error) {
	svc, err := crmsvc.NewCompanyService()
	if err != nil {
		return nil, fmt.Errorf("tạo CompanyService: %w", err)
	}
	return &CompanyHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Company, dto.CompanyCreateInput, dto.CompanyUpdateInput](svc),
		CompanyService: svc,
	}, nil
}

// InsertOne ghi đè base để gói liên hệ phẳng (field contact) thành contacts[0] trước khi tạo.
func (h *CompanyHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CompanyCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		// Client cũ gửi một liên hệ phẳng qua contact
		if input.Contact != nil && len(input.Contacts) == 0 {
			input.Contacts = []models.CompanyContact{*input.Contact}
			input.Contact = nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		if err == nil {
			logger.LogCRUD("insert", "company", data.ID.Hex(), c, map[string]interface{}{
				"name": data.Name,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleDetail xử lý GET /companies/detail/:id — công ty kèm nhân viên phụ trách populate.
func (h *CompanyHandler) HandleDetail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"ID công ty không hợp lệ",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		data, err := h.CompanyService.FindDetail(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, data, err)
		return nil
	})
}
