// Package router đăng ký các route thuộc domain customers: customers, subscribers.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/handler"
	apirouter "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/router"
)

// Register đăng ký tất cả route customers lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("tạo CustomerHandler: %w", err)
	}
	subscriberHandler, err := customerhdl.NewSubscriberHandler()
	if err != nil {
		return fmt.Errorf("tạo SubscriberHandler: %w", err)
	}

	// GET /customers/list — danh sách khách hàng mới đăng ký trước
	apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/list", nil, customerHandler.HandleList)
	r.RegisterCRUDRoutes(v1, "/customers", customerHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/subscribers", subscriberHandler, apirouter.ReadWriteConfig)

	return nil
}
