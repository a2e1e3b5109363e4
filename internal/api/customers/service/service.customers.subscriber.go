package customersvc

import (
	"context"
	"fmt"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/utility"
)

// SubscriberService xử lý nghiệp vụ đăng ký nhận tin.
type SubscriberService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscriber]
}

// NewSubscriberService tạo SubscriberService mới.
func NewSubscriberService() (*SubscriberService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscribers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Subscribers, common.ErrNotFound)
	}
	return &SubscriberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscriber](coll),
	}, nil
}

// InsertOne ghi đè base để mặc định SubscribedAt = thời điểm tạo khi client không gửi.
func (s *SubscriberService) InsertOne(ctx context.Context, data models.Subscriber) (models.Subscriber, error) {
	if data.SubscribedAt == 0 {
		data.SubscribedAt = utility.CurrentTimeInMilli()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}
