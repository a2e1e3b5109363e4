// Package ordersvc - service cho domain orders.
package ordersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// OrderService xử lý nghiệp vụ đơn hàng.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
}

// NewOrderService tạo OrderService mới.
func NewOrderService() (*OrderService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Orders, common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](coll),
	}, nil
}

// FindAllWithCustomer trả về toàn bộ đơn hàng, mới nhất trước,
// kèm khách hàng {firstName, lastName, email} đã populate qua $lookup.
func (s *OrderService) FindAllWithCustomer(ctx context.Context) ([]dto.OrderWithCustomer, error) {
	pipeline := []bson.M{
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Customers,
			"localField":   "customerId",
			"foreignField": "_id",
			"as":           "customer",
		}},
		{"$unwind": bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]dto.OrderWithCustomer, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
