// Package global chứa các biến toàn cục của ứng dụng: cấu hình server,
// phiên kết nối MongoDB, tên collection và registry collections.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/muhammedanshifpoothanari/adminKiswa/config"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/registry"
)

// MongoDB_Store_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Store_CollectionName struct {
	Products        string // Tên collection cho sản phẩm
	Categories      string // Tên collection cho danh mục sản phẩm
	Orders          string // Tên collection cho đơn hàng
	Customers       string // Tên collection cho khách hàng cửa hàng
	Subscribers     string // Tên collection cho người đăng ký nhận tin
	Employees       string // Tên collection cho nhân viên
	Attendances     string // Tên collection cho chấm công
	Companies       string // Tên collection cho công ty trong pipeline CRM
	Contacts        string // Tên collection cho liên hệ CRM
	Outreaches      string // Tên collection cho hoạt động outreach theo tháng
	AnalyticsEvents string // Tên collection cho sự kiện analytics
}

// Các biến toàn cục
var Validate *validator.Validate                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration             // Cấu hình của server
var MongoDB_ColNames MongoDB_Store_CollectionName          // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
