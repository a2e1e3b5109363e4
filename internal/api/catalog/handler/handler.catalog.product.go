// Package cataloghdl - handler cho domain catalog.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/models"
	catalogsvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/service"
)

// ProductHandler xử lý API sản phẩm. Kế thừa toàn bộ CRUD từ BaseHandler.
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	svc, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput](svc),
		ProductService: svc,
	}, nil
}

// HandleListWithCategory xử lý GET /products/list — danh sách sản phẩm mới nhất trước,
// kèm danh mục {name, slug} đã populate.
func (h *ProductHandler) HandleListWithCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.ProductService.FindAllWithCategory(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
