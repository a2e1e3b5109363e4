// Package catalogsvc - service cho domain catalog (products, categories).
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/catalog/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// ProductService xử lý nghiệp vụ sản phẩm.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](coll),
	}, nil
}

// FindAllWithCategory trả về toàn bộ sản phẩm, mới nhất trước,
// kèm danh mục đã populate ({name, slug}) qua $lookup.
func (s *ProductService) FindAllWithCategory(ctx context.Context) ([]dto.ProductWithCategory, error) {
	pipeline := []bson.M{
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Categories,
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}},
		{"$unwind": bson.M{"path": "$category", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]dto.ProductWithCategory, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
