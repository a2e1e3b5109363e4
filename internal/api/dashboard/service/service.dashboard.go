// Package dashboardsvc - service tổng hợp số liệu dashboard từ nhiều collection.
package dashboardsvc

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/dashboard/dto"
	ordersdto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/dto"
	ordersmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// Xu hướng biến động tháng này so với tháng trước.
const (
	TrendUp   = "up"
	TrendDown = "down"
)

// activeSessionWindow là khoảng lùi để đếm session đang hoạt động.
const activeSessionWindow = 30 * time.Minute

// DashboardService đọc trực tiếp bốn collection để dựng số liệu tổng hợp.
type DashboardService struct {
	orderColl    *mongo.Collection
	customerColl *mongo.Collection
	productColl  *mongo.Collection
	eventColl    *mongo.Collection
}

// NewDashboardService tạo DashboardService mới.
func NewDashboardService() (*DashboardService, error) {
	orderColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Orders, common.ErrNotFound)
	}
	customerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	productColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	eventColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AnalyticsEvents)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AnalyticsEvents, common.ErrNotFound)
	}
	return &DashboardService{
		orderColl:    orderColl,
		customerColl: customerColl,
		productColl:  productColl,
		eventColl:    eventColl,
	}, nil
}

// PercentChange tính phần trăm biến động so với kỳ trước, làm tròn 1 chữ số.
// Kỳ trước bằng 0 thì trả 0 thay vì chia cho 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current-previous)/previous*1000) / 10
}

// TrendOf quy đổi biến động thành xu hướng, đi ngang tính là tăng.
func TrendOf(change float64) string {
	if change < 0 {
		return TrendDown
	}
	return TrendUp
}

// MonthWindows trả về mốc đầu tháng trước và đầu tháng hiện tại theo UTC (unix milli).
func MonthWindows(now time.Time) (lastStart, thisStart int64) {
	t := now.UTC()
	this := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := this.AddDate(0, -1, 0)
	return last.UnixMilli(), this.UnixMilli()
}

// PaidWindowFilter lọc đơn đã thanh toán trong nửa khoảng [from, to).
// Doanh thu và số đơn theo cửa sổ tháng đều tính trên đơn paid; tổng số đơn thì không lọc.
func PaidWindowFilter(from, to int64) bson.M {
	return bson.M{
		"paymentStatus": ordersmodels.PaymentStatusPaid,
		"createdAt":     bson.M{"$gte": from, "$lt": to},
	}
}

// Overview dựng toàn bộ dữ liệu trang dashboard.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	lastStart, thisStart := MonthWindows(now)
	nowMs := now.UnixMilli()

	thisRevenue, err := s.paidRevenue(ctx, thisStart, nowMs)
	if err != nil {
		return nil, err
	}
	lastRevenue, err := s.paidRevenue(ctx, lastStart, thisStart)
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.orderColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	thisOrders, err := s.orderColl.CountDocuments(ctx, PaidWindowFilter(thisStart, nowMs))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	lastOrders, err := s.orderColl.CountDocuments(ctx, PaidWindowFilter(lastStart, thisStart))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	totalCustomers, err := s.customerColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	thisCustomers, err := s.customerColl.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": thisStart, "$lt": nowMs}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	lastCustomers, err := s.customerColl.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": lastStart, "$lt": thisStart}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	totalProducts, err := s.productColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	sessionSince := now.Add(-activeSessionWindow).UnixMilli()
	activeSessions, err := s.eventColl.Distinct(ctx, "sessionId", bson.M{"timestamp": bson.M{"$gte": sessionSince}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	recentOrders, err := s.recentOrders(ctx, 5)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.topProducts(ctx, 4)
	if err != nil {
		return nil, err
	}

	revenueChange := PercentChange(thisRevenue, lastRevenue)
	ordersChange := PercentChange(float64(thisOrders), float64(lastOrders))
	customersChange := PercentChange(float64(thisCustomers), float64(lastCustomers))

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			Revenue: dto.RevenueStat{
				Value:  thisRevenue,
				Change: revenueChange,
				Trend:  TrendOf(revenueChange),
			},
			Orders: dto.CountStat{
				Value:     totalOrders,
				ThisMonth: thisOrders,
				Change:    ordersChange,
				Trend:     TrendOf(ordersChange),
			},
			Customers: dto.CountStat{
				Value:     totalCustomers,
				ThisMonth: thisCustomers,
				Change:    customersChange,
				Trend:     TrendOf(customersChange),
			},
			Products:       totalProducts,
			ActiveSessions: len(activeSessions),
		},
		RecentOrders: recentOrders,
		TopProducts:  topProducts,
	}, nil
}

// paidRevenue cộng tổng tiền các đơn đã thanh toán trong nửa khoảng [from, to).
func (s *DashboardService) paidRevenue(ctx context.Context, from, to int64) (float64, error) {
	pipeline := []bson.M{
		{"$match": PaidWindowFilter(from, to)},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
		}},
	}

	cursor, err := s.orderColl.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// recentOrders lấy các đơn mới nhất kèm tên khách hàng.
func (s *DashboardService) recentOrders(ctx context.Context, limit int64) ([]ordersdto.OrderWithCustomer, error) {
	pipeline := []bson.M{
		{"$sort": bson.M{"createdAt": -1}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Customers,
			"localField":   "customerId",
			"foreignField": "_id",
			"as":           "customer",
		}},
		{"$unwind": bson.M{
			"path":                       "$customer",
			"preserveNullAndEmptyArrays": true,
		}},
	}

	cursor, err := s.orderColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	results := make([]ordersdto.OrderWithCustomer, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// UnknownProductName là nhóm gom các item không có tên sản phẩm.
const UnknownProductName = "Unknown Product"

// TopProductsPipeline gom items của mọi đơn hàng theo tên sản phẩm.
// Item thiếu tên được gom vào nhóm Unknown Product thay vì rơi thành nhóm rỗng.
func TopProductsPipeline(limit int64) []bson.M {
	return []bson.M{
		{"$unwind": "$items"},
		{"$group": bson.M{
			"_id":      bson.M{"$ifNull": []interface{}{"$items.name", UnknownProductName}},
			"quantity": bson.M{"$sum": "$items.quantity"},
			"total":    bson.M{"$sum": "$items.total"},
		}},
		{"$sort": bson.M{"quantity": -1}},
		{"$limit": limit},
	}
}

// topProducts lấy limit sản phẩm bán chạy nhất theo tổng số lượng.
func (s *DashboardService) topProducts(ctx context.Context, limit int64) ([]dto.TopProduct, error) {
	cursor, err := s.orderColl.Aggregate(ctx, TopProductsPipeline(limit))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	results := make([]dto.TopProduct, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
