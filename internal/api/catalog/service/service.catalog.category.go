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

// CategoryService xử lý nghiệp vụ danh mục sản phẩm.
// Ràng buộc xóa danh mục còn danh mục con được khai báo qua tag relationship trên model,
// base service tự kiểm tra trước mọi thao tác xóa.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo CategoryService mới.
func NewCategoryService() (*CategoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Categories, common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](coll),
	}, nil
}

// FindAllWithParent trả về toàn bộ danh mục kèm tên danh mục cha đã populate.
func (s *CategoryService) FindAllWithParent(ctx context.Context) ([]dto.CategoryWithParent, error) {
	pipeline := []bson.M{
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Categories,
			"localField":   "parentId",
			"foreignField": "_id",
			"as":           "parent",
		}},
		{"$unwind": bson.M{"path": "$parent", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]dto.CategoryWithParent, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
