// Package crmsvc - Test logic gộp liên hệ hợp nhất từ ba nguồn.
package crmsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/crm/models"
	custmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/customers/models"
)

func TestMergeUnifiedContacts_CountIsSumOfSources(t *testing.T) {
	crmContacts := []models.Contact{
		{ID: primitive.NewObjectID(), FirstName: "An", LastName: "Nguyen", Email: "an@crm.vn", CreatedAt: 300},
		{ID: primitive.NewObjectID(), FirstName: "Binh", LastName: "Tran", Email: "binh@crm.vn", CreatedAt: 100},
	}
	customers := []custmodels.Customer{
		{ID: primitive.NewObjectID(), FirstName: "Chi", LastName: "Le", Email: "chi@store.vn", CreatedAt: 200},
	}
	subscribers := []custmodels.Subscriber{
		{ID: primitive.NewObjectID(), Email: "sub@mail.vn", Status: custmodels.SubscriberStatusSubscribed, CreatedAt: 400},
	}

	merged := MergeUnifiedContacts(crmContacts, customers, subscribers)
	if len(merged) != 4 {
		t.Fatalf("số liên hệ hợp nhất = %d, muốn 4 (tổng cả ba nguồn)", len(merged))
	}
}

func TestMergeUnifiedContacts_SourceTags(t *testing.T) {
	crmContacts := []models.Contact{
		{ID: primitive.NewObjectID(), Email: "a@crm.vn", Company: "ACME", Role: "CTO", Type: models.ContactTypePartner, Status: models.ContactStatusActive},
	}
	customers := []custmodels.Customer{
		{ID: primitive.NewObjectID(), FirstName: "Chi", Email: "c@store.vn"},
	}
	subscribers := []custmodels.Subscriber{
		{ID: primitive.NewObjectID(), Email: "s@mail.vn", Status: custmodels.SubscriberStatusUnsubscribed},
	}

	merged := MergeUnifiedContacts(crmContacts, customers, subscribers)

	bySource := map[string]dto.UnifiedContact{}
	for _, c := range merged {
		bySource[c.Source] = c
	}

	crm, ok := bySource[dto.ContactSourceCrm]
	if !ok {
		t.Fatal("thiếu liên hệ source CRM")
	}
	if crm.Company != "ACME" || crm.Role != "CTO" {
		t.Errorf("liên hệ CRM phải giữ nguyên company/role, có %q/%q", crm.Company, crm.Role)
	}

	store, ok := bySource[dto.ContactSourceStore]
	if !ok {
		t.Fatal("thiếu liên hệ source Store")
	}
	if store.Company != "Customer" || store.Role != "Shopper" {
		t.Errorf("khách hàng cửa hàng phải có company=Customer role=Shopper, có %q/%q", store.Company, store.Role)
	}
	if store.Type != models.ContactTypeClient || store.Status != models.ContactStatusActive {
		t.Errorf("khách hàng cửa hàng phải là Client/Active, có %q/%q", store.Type, store.Status)
	}

	news, ok := bySource[dto.ContactSourceNewsletter]
	if !ok {
		t.Fatal("thiếu liên hệ source Newsletter")
	}
	if news.FirstName != "Newsletter" || news.LastName != "Subscriber" {
		t.Errorf("subscriber phải có tên placeholder Newsletter Subscriber, có %q %q", news.FirstName, news.LastName)
	}
	if news.Type != models.ContactTypeLead {
		t.Errorf("subscriber phải là Lead, có %q", news.Type)
	}
	if news.Status != models.ContactStatusInactive {
		t.Errorf("subscriber đã unsubscribe phải là Inactive, có %q", news.Status)
	}
}

func TestMergeUnifiedContacts_SubscribedMapsToActive(t *testing.T) {
	subscribers := []custmodels.Subscriber{
		{ID: primitive.NewObjectID(), Email: "s@mail.vn", Status: custmodels.SubscriberStatusSubscribed},
	}
	merged := MergeUnifiedContacts(nil, nil, subscribers)
	if len(merged) != 1 {
		t.Fatalf("số liên hệ = %d, muốn 1", len(merged))
	}
	if merged[0].Status != models.ContactStatusActive {
		t.Errorf("subscriber đang subscribed phải là Active, có %q", merged[0].Status)
	}
}

func TestMergeUnifiedContacts_SortedNewestFirst(t *testing.T) {
	crmContacts := []models.Contact{
		{ID: primitive.NewObjectID(), Email: "old@crm.vn", CreatedAt: 100},
	}
	customers := []custmodels.Customer{
		{ID: primitive.NewObjectID(), Email: "newest@store.vn", CreatedAt: 900},
	}
	subscribers := []custmodels.Subscriber{
		{ID: primitive.NewObjectID(), Email: "mid@mail.vn", CreatedAt: 500},
	}

	merged := MergeUnifiedContacts(crmContacts, customers, subscribers)
	for i := 1; i < len(merged); i++ {
		if merged[i-1].CreatedAt < merged[i].CreatedAt {
			t.Fatalf("danh sách phải sắp xếp createdAt giảm dần, vị trí %d (%d) < vị trí %d (%d)",
				i-1, merged[i-1].CreatedAt, i, merged[i].CreatedAt)
		}
	}
	if merged[0].Email != "newest@store.vn" {
		t.Errorf("liên hệ mới nhất phải đứng đầu, có %q", merged[0].Email)
	}
}

func TestMergeUnifiedContacts_EmptySources(t *testing.T) {
	merged := MergeUnifiedContacts(nil, nil, nil)
	if merged == nil {
		t.Fatal("MergeUnifiedContacts phải trả về slice rỗng, không phải nil")
	}
	if len(merged) != 0 {
		t.Errorf("số liên hệ = %d, muốn 0", len(merged))
	}
}
