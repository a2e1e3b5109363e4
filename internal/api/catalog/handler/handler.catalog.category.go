package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/handler"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/models"
	catalogsvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/service"
)

// CategoryHandler xử lý API danh mục sản phẩm.
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput]
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo CategoryHandler mới.
func NewCategoryHandler() (*CategoryHandler, error) {
	svc, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput](svc),
		CategoryService: svc,
	}, nil
}

// HandleListWithParent xử lý GET /categories/list — danh sách danh mục kèm tên danh mục cha.
func (h *CategoryHandler) HandleListWithParent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.CategoryService.FindAllWithParent(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
