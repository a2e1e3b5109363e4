// Package crmsvc - service cho domain crm (companies, contacts, outreaches).
package crmsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// CompanyService xử lý nghiệp vụ công ty trong pipeline CRM.
type CompanyService struct {
	*basesvc.BaseServiceMongoImpl[models.Company]
}

// NewCompanyService tạo CompanyService mới.
func NewCompanyService() (*CompanyService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Companies)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Companies, common.ErrNotFound)
	}
	return &CompanyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Company](coll),
	}, nil
}

// FindDetail trả về công ty kèm nhân viên phụ trách đã populate.
func (s *CompanyService) FindDetail(ctx context.Context, id primitive.ObjectID) (*dto.CompanyDetail, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Employees,
			"localField":   "assignedEmployeeId",
			"foreignField": "_id",
			"as":           "assignedEmployee",
		}},
		{"$unwind": bson.M{"path": "$assignedEmployee", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []dto.CompanyDetail
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}
