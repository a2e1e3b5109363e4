// Package router đăng ký route dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/dashboard/handler"
	apirouter "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/router"
)

// Register đăng ký route dashboard lên v1.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	dashboardHandler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("tạo DashboardHandler: %w", err)
	}

	// GET /dashboard — số liệu tổng quan
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "", nil, dashboardHandler.HandleOverview)

	return nil
}
