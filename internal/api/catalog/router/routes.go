// Package router đăng ký các route thuộc domain catalog: products, categories.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/handler"
	apirouter "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}

	// GET /products/list — danh sách sản phẩm kèm danh mục populate
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/list", nil, productHandler.HandleListWithCategory)
	r.RegisterCRUDRoutes(v1, "/products", productHandler, apirouter.ReadWriteConfig)

	// GET /categories/list — danh sách danh mục kèm tên danh mục cha
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "/list", nil, categoryHandler.HandleListWithParent)
	r.RegisterCRUDRoutes(v1, "/categories", categoryHandler, apirouter.ReadWriteConfig)

	return nil
}
