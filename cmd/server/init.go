package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/muhammedanshifpoothanari/adminKiswa/config"
	analyticsmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/models"
	catalogmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/models"
	crmmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	custmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/models"
	hrmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/models"
	ordersmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/database"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.Customers = "customers"
	global.MongoDB_ColNames.Subscribers = "subscribers"
	global.MongoDB_ColNames.Employees = "employees"
	global.MongoDB_ColNames.Attendances = "attendances"
	global.MongoDB_ColNames.Companies = "companies"
	global.MongoDB_ColNames.Contacts = "contacts"
	global.MongoDB_ColNames.Outreaches = "outreaches"
	global.MongoDB_ColNames.AnalyticsEvents = "analytics_events"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection từ struct tag của model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName_Store
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordersmodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Customers), custmodels.Customer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Subscribers), custmodels.Subscriber{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Employees), hrmodels.Employee{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Attendances), hrmodels.Attendance{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Companies), crmmodels.Company{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), crmmodels.Contact{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Outreaches), crmmodels.Outreach{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AnalyticsEvents), analyticsmodels.AnalyticsEvent{})

	// Các compound index phục vụ aggregation (không biểu diễn được bằng tag)
	if err := database.CreateStoreAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
	logrus.Info("Created indexes")
}
