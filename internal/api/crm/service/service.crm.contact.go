package crmsvc

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	custmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// ContactService xử lý nghiệp vụ liên hệ CRM và danh sách liên hệ hợp nhất.
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[models.Contact]
	customerColl   *mongo.Collection
	subscriberColl *mongo.Collection
}

// NewContactService tạo ContactService mới.
func NewContactService() (*ContactService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Contacts, common.ErrNotFound)
	}
	customerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	subscriberColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscribers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Subscribers, common.ErrNotFound)
	}
	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Contact](coll),
		customerColl:         customerColl,
		subscriberColl:       subscriberColl,
	}, nil
}

// FindUnified gộp liên hệ từ ba nguồn: CRM, khách hàng cửa hàng và người đăng ký nhận tin.
// Count luôn bằng tổng số record của cả ba nguồn.
func (s *ContactService) FindUnified(ctx context.Context) (*dto.UnifiedContactsResponse, error) {
	sortOpts := options.Find().SetSort(bson.M{"createdAt": -1})

	crmContacts, err := s.Find(ctx, bson.M{}, sortOpts)
	if err != nil {
		return nil, err
	}

	custCursor, err := s.customerColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var customers []custmodels.Customer
	if err := custCursor.All(ctx, &customers); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	subCursor, err := s.subscriberColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var subscribers []custmodels.Subscriber
	if err := subCursor.All(ctx, &subscribers); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	contacts := MergeUnifiedContacts(crmContacts, customers, subscribers)
	return &dto.UnifiedContactsResponse{
		Contacts: contacts,
		Count:    len(contacts),
	}, nil
}

// MergeUnifiedContacts chuẩn hóa ba nguồn liên hệ về một danh sách duy nhất,
// gắn tag source từng record và sắp xếp mới nhất trước.
func MergeUnifiedContacts(crmContacts []models.Contact, customers []custmodels.Customer, subscribers []custmodels.Subscriber) []dto.UnifiedContact {
	merged := make([]dto.UnifiedContact, 0, len(crmContacts)+len(customers)+len(subscribers))

	for _, c := range crmContacts {
		merged = append(merged, dto.UnifiedContact{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			Company:   c.Company,
			Role:      c.Role,
			Type:      c.Type,
			Status:    c.Status,
			Source:    dto.ContactSourceCrm,
			CreatedAt: c.CreatedAt,
		})
	}

	for _, c := range customers {
		merged = append(merged, dto.UnifiedContact{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			Company:   "Customer",
			Role:      "Shopper",
			Type:      models.ContactTypeClient,
			Status:    models.ContactStatusActive,
			Source:    dto.ContactSourceStore,
			CreatedAt: c.CreatedAt,
		})
	}

	for _, sub := range subscribers {
		status := models.ContactStatusInactive
		if sub.Status == custmodels.SubscriberStatusSubscribed {
			status = models.ContactStatusActive
		}
		merged = append(merged, dto.UnifiedContact{
			ID:        sub.ID,
			FirstName: "Newsletter",
			LastName:  "Subscriber",
			Email:     sub.Email,
			Type:      models.ContactTypeLead,
			Status:    status,
			Source:    dto.ContactSourceNewsletter,
			CreatedAt: sub.CreatedAt,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt > merged[j].CreatedAt
	})
	return merged
}
