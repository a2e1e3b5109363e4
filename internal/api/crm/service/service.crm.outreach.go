package crmsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/utility"
)

// OutreachService xử lý nghiệp vụ outreach theo tháng.
type OutreachService struct {
	*basesvc.BaseServiceMongoImpl[models.Outreach]
}

// NewOutreachService tạo OutreachService mới.
func NewOutreachService() (*OutreachService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Outreaches)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Outreaches, common.ErrNotFound)
	}
	return &OutreachService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Outreach](coll),
	}, nil
}

// FindWithRefs trả về các chiến dịch outreach kèm công ty và nhân viên đã populate.
// month dạng "YYYY-MM" lọc theo cửa sổ [đầu tháng, đầu tháng sau); employeeId tùy chọn.
func (s *OutreachService) FindWithRefs(ctx context.Context, month, employeeId string) ([]dto.OutreachWithRefs, error) {
	match := bson.M{}
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, "Tháng không hợp lệ (định dạng YYYY-MM)", common.StatusBadRequest, err)
		}
		start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		match["month"] = bson.M{
			"$gte": start.UnixMilli(),
			"$lt":  start.AddDate(0, 1, 0).UnixMilli(),
		}
	}
	if employeeId != "" {
		oid := utility.String2ObjectID(employeeId)
		if oid.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationInput, "employeeId không hợp lệ", common.StatusBadRequest, nil)
		}
		match["employeeId"] = oid
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Companies,
			"localField":   "companyId",
			"foreignField": "_id",
			"as":           "company",
		}},
		{"$unwind": bson.M{"path": "$company", "preserveNullAndEmptyArrays": true}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Employees,
			"localField":   "employeeId",
			"foreignField": "_id",
			"as":           "employee",
		}},
		{"$unwind": bson.M{"path": "$employee", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]dto.OutreachWithRefs, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}
