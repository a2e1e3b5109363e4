// Package customerhdl - handler cho domain customers.
package customerhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/models"
	customersvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/service"
)

// CustomerHandler xử lý API khách hàng cửa hàng. Toàn bộ CRUD đi qua BaseHandler.
type CustomerHandler struct {
	*basehdl.BaseHandler[models.Customer, dto.CustomerCreateInput, dto.CustomerUpdateInput]
	CustomerService *customersvc.CustomerService
}

// NewCustomerHandler tạo CustomerHandler mới.
func NewCustomerHandler() (*CustomerHandler, error) {
	svc, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("tạo CustomerService: %w", err)
	}
	return &CustomerHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Customer, dto.CustomerCreateInput, dto.CustomerUpdateInput](svc),
		CustomerService: svc,
	}, nil
}

// HandleList xử lý GET /customers/list — danh sách khách hàng mới đăng ký trước.
func (h *CustomerHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.CustomerService.FindAllSorted(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// SubscriberHandler xử lý API đăng ký nhận tin.
type SubscriberHandler struct {
	*basehdl.BaseHandler[models.Subscriber, dto.SubscriberCreateInput, dto.SubscriberUpdateInput]
	SubscriberService *customersvc.SubscriberService
}

// NewSubscriberHandler tạo SubscriberHandler mới.
func NewSubscriberHandler() (*SubscriberHandler, error) {
	svc, err := customersvc.NewSubscriberService()
	if err != nil {
		return nil, fmt.Errorf("tạo SubscriberService: %w", err)
	}
	return &SubscriberHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Subscriber, dto.SubscriberCreateInput, dto.SubscriberUpdateInput](svc),
		SubscriberService: svc,
	}, nil
}
