// Package router đăng ký các route thuộc domain orders.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orderhdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/handler"
	apirouter "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/router"
)

// Register đăng ký tất cả route orders lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("tạo OrderHandler: %w", err)
	}

	// GET /orders/list — danh sách đơn hàng kèm khách hàng populate
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/list", nil, orderHandler.HandleListWithCustomer)
	// PUT /orders/update — cập nhật theo _id trong body
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/update", nil, orderHandler.HandleUpdateByBody)
	r.RegisterCRUDRoutes(v1, "/orders", orderHandler, apirouter.ReadWriteConfig)

	return nil
}
