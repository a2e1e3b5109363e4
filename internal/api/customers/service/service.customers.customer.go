// Package customersvc - service cho domain customers.
package customersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// CustomerService xử lý nghiệp vụ khách hàng cửa hàng.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[models.Customer]
}

// NewCustomerService tạo CustomerService mới.
func NewCustomerService() (*CustomerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Customer](coll),
	}, nil
}

// NewestFirstOptions trả về options sắp xếp danh sách theo createdAt giảm dần.
func NewestFirstOptions() *options.FindOptions {
	return options.Find().SetSort(bson.M{"createdAt": -1})
}

// FindAllSorted trả về toàn bộ khách hàng, mới đăng ký trước.
func (s *CustomerService) FindAllSorted(ctx context.Context) ([]models.Customer, error) {
	return s.Find(ctx, bson.M{}, NewestFirstOptions())
}
