// Package database - Index bổ sung cho các truy vấn tổng hợp (nested fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// CreateStoreAdditionalIndexes tạo các index bổ sung phục vụ dashboard và analytics.
// Gọi sau CreateIndexes cho từng collection.
func CreateStoreAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// orders: (paymentStatus, createdAt) — tính doanh thu theo cửa sổ tháng
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "paymentStatus", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_payment_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// analytics_events: (eventType, createdAt) — đếm page_view / product_view theo cửa sổ
	events := db.Collection(global.MongoDB_ColNames.AnalyticsEvents)
	if _, err := events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "eventType", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("event_type_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// analytics_events: (timestamp, sessionId) — đếm distinct session trong cửa sổ trượt 30 phút
	if _, err := events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "timestamp", Value: -1},
			{Key: "sessionId", Value: 1},
		},
		Options: options.Index().SetName("event_timestamp_session"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// attendances: (date, status) — báo cáo chấm công theo tháng
	attendances := db.Collection(global.MongoDB_ColNames.Attendances)
	if _, err := attendances.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("attendance_date_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// outreaches: (month, employeeId) — lọc outreach theo cửa sổ tháng và nhân viên
	outreaches := db.Collection(global.MongoDB_ColNames.Outreaches)
	if _, err := outreaches.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "month", Value: 1},
			{Key: "employeeId", Value: 1},
		},
		Options: options.Index().SetName("outreach_month_employee"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
