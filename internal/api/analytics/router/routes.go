// Package router đăng ký các route thuộc domain analytics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/handler"
	apirouter "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/router"
)

// Register đăng ký tất cả route analytics lên v1.
// Sự kiện chỉ ingest và đọc, không cho update/delete qua API.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	eventHandler, err := analyticshdl.NewEventHandler()
	if err != nil {
		return fmt.Errorf("tạo EventHandler: %w", err)
	}

	// GET /analytics/stats — thống kê tổng hợp
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/stats", nil, eventHandler.HandleStats)
	r.RegisterCRUDRoutes(v1, "/analytics/events", eventHandler, apirouter.IngestOnlyConfig)

	return nil
}
