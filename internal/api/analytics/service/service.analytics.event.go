// Package analyticssvc - service cho domain analytics.
package analyticssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/models"
	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/utility"
)

// EventService xử lý ingest và thống kê sự kiện analytics.
type EventService struct {
	*basesvc.BaseServiceMongoImpl[models.AnalyticsEvent]
}

// NewEventService tạo EventService mới.
func NewEventService() (*EventService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AnalyticsEvents)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AnalyticsEvents, common.ErrNotFound)
	}
	return &EventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AnalyticsEvent](coll),
	}, nil
}

// InsertOne ghi đè base để mặc định Timestamp = thời điểm server nhận khi client không gửi.
func (s *EventService) InsertOne(ctx context.Context, data models.AnalyticsEvent) (models.AnalyticsEvent, error) {
	if data.Timestamp == 0 {
		data.Timestamp = utility.CurrentTimeInMilli()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// Stats tổng hợp số liệu analytics: page view, session duy nhất,
// top sản phẩm được xem, phân bố thiết bị và hoạt động gần nhất.
func (s *EventService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	totalPageViews, err := s.CountDocuments(ctx, bson.M{"eventType": models.EventTypePageView})
	if err != nil {
		return nil, err
	}

	sessions, err := s.Distinct(ctx, "sessionId", bson.M{})
	if err != nil {
		return nil, err
	}

	topProducts, err := s.topViewedProducts(ctx, 5)
	if err != nil {
		return nil, err
	}

	deviceStats, err := s.deviceBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	recentOpts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(10)
	recentActivity, err := s.Find(ctx, bson.M{}, recentOpts)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalPageViews: totalPageViews,
		UniqueSessions: len(sessions),
		TopProducts:    topProducts,
		DeviceStats:    deviceStats,
		RecentActivity: recentActivity,
	}, nil
}

// UnknownProductName là nhóm gom các sự kiện product_view không có metadata.name.
const UnknownProductName = "Unknown Product"

// TopViewedProductsPipeline gom sự kiện product_view theo metadata.name.
// Sự kiện thiếu tên được gom vào nhóm Unknown Product thay vì bị loại khỏi thống kê.
func TopViewedProductsPipeline(limit int64) []bson.M {
	return []bson.M{
		{"$match": bson.M{"eventType": models.EventTypeProductView}},
		{"$group": bson.M{
			"_id":   bson.M{"$ifNull": []interface{}{"$metadata.name", UnknownProductName}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": limit},
	}
}

// topViewedProducts lấy limit sản phẩm được xem nhiều nhất.
func (s *EventService) topViewedProducts(ctx context.Context, limit int64) ([]dto.ProductViewStat, error) {
	cursor, err := s.Collection().Aggregate(ctx, TopViewedProductsPipeline(limit))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	results := make([]dto.ProductViewStat, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// deviceBreakdown gom page view theo loại thiết bị, thiết bị thiếu thông tin tính là unknown.
func (s *EventService) deviceBreakdown(ctx context.Context) ([]dto.DeviceStat, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"eventType": models.EventTypePageView}},
		{"$group": bson.M{
			"_id":   bson.M{"$ifNull": []interface{}{"$device.type", "unknown"}},
			"value": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"value": -1}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	results := make([]dto.DeviceStat, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
