// Package orderhdl - handler cho domain orders.
package orderhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/models"
	ordersvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/service"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/utility"
)

// OrderHandler xử lý API đơn hàng.
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, dto.OrderCreateInput, dto.OrderUpdateInput]
	OrderService *ordersvc.OrderService
}

// NewOrderHandler tạo OrderHandler mới.
func NewOrderHandler() (*OrderHandler, error) {
	svc, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrderService: %w", err)
	}
	return &OrderHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Order, dto.OrderCreateInput, dto.OrderUpdateInput](svc),
		OrderService: svc,
	}, nil
}

// HandleListWithCustomer xử lý GET /orders/list — danh sách đơn hàng mới nhất trước,
// kèm khách hàng đã populate.
func (h *OrderHandler) HandleListWithCustomer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.OrderService.FindAllWithCustomer(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdateByBody xử lý PUT /orders/update — cập nhật đơn hàng theo _id nằm trong body.
// Chỉ các field non-zero trong body được đưa vào $set.
func (h *OrderHandler) HandleUpdateByBody(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.OrderUpdateByBodyInput
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

		if !primitive.IsValidObjectID(input.ID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"ID đơn hàng không hợp lệ",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		model, err := h.TransformUpdateInputToModel(&input.OrderUpdateInput)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		updateData, err := basehdl.BuildPartialUpdate(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), utility.String2ObjectID(input.ID), updateData)
		h.HandleResponse(c, data, err)
		return nil
	})
}
