// Package router đăng ký các route thuộc domain crm: companies, contacts, outreaches.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/handler"
	apirouter "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/router"
)

// Register đăng ký tất cả route crm lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	companyHandler, err := crmhdl.NewCompanyHandler()
	if err != nil {
		return fmt.Errorf("tạo CompanyHandler: %w", err)
	}
	contactHandler, err := crmhdl.NewContactHandler()
	if err != nil {
		return fmt.Errorf("tạo ContactHandler: %w", err)
	}
	outreachHandler, err := crmhdl.NewOutreachHandler()
	if err != nil {
		return fmt.Errorf("tạo OutreachHandler: %w", err)
	}

	// GET /companies/detail/:id — công ty kèm nhân viên phụ trách populate
	apirouter.RegisterRouteWithMiddleware(v1, "/companies", "GET", "/detail/:id", nil, companyHandler.HandleDetail)
	r.RegisterCRUDRoutes(v1, "/companies", companyHandler, apirouter.ReadWriteConfig)

	// GET /contacts/unified — liên hệ hợp nhất từ CRM + cửa hàng + bản tin
	apirouter.RegisterRouteWithMiddleware(v1, "/contacts", "GET", "/unified", nil, contactHandler.HandleUnified)
	r.RegisterCRUDRoutes(v1, "/contacts", contactHandler, apirouter.ReadWriteConfig)

	// GET /outreaches/list — outreach theo tháng kèm công ty + nhân viên populate
	apirouter.RegisterRouteWithMiddleware(v1, "/outreaches", "GET", "/list", nil, outreachHandler.HandleListWithRefs)
	r.RegisterCRUDRoutes(v1, "/outreaches", outreachHandler, apirouter.ReadWriteConfig)

	return nil
}
