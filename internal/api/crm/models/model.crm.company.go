// Package models - các model thuộc domain crm (companies, contacts, outreaches).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái pipeline của công ty
const (
	CompanyStatusProspect = "prospect"
	CompanyStatusMql      = "mql"
	CompanyStatusSql      = "sql"
	CompanyStatusWon      = "won"
	CompanyStatusLost     = "lost"
)

// Cột kanban công ty đang đứng
const (
	CompanyStageLead         = "Lead"
	CompanyStageMQL          = "MQL"
	CompanyStageMAL          = "MAL"
	CompanyStageSAL          = "SAL"
	CompanyStageDealWon      = "Deal Won"
	CompanyStageRepeatClient = "Repeat Client"
)

// CompanyContact một người liên hệ thuộc công ty.
type CompanyContact struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// EmailHistoryEntry một email đã gửi cho công ty.
type EmailHistoryEntry struct {
	Subject string `json:"subject,omitempty" bson:"subject,omitempty"`
	Date    int64  `json:"date,omitempty" bson:"date,omitempty"`
	Body    string `json:"body,omitempty" bson:"body,omitempty"`
}

// Company lưu công ty trong pipeline CRM (collection companies).
type Company struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name      string `json:"name" bson:"name" index:"text"`
	Industry  string `json:"industry,omitempty" bson:"industry,omitempty"`
	Location  string `json:"location,omitempty" bson:"location,omitempty"`
	Valuation string `json:"valuation,omitempty" bson:"valuation,omitempty"`

	Status string `json:"status" bson:"status" default:"prospect"`
	Stage  string `json:"stage" bson:"stage" default:"Lead" index:"single:1"`

	Contacts []CompanyContact `json:"contacts,omitempty" bson:"contacts,omitempty"`

	Notes        []string            `json:"notes,omitempty" bson:"notes,omitempty"`
	EmailHistory []EmailHistoryEntry `json:"emailHistory,omitempty" bson:"emailHistory,omitempty"`
	Links        []string            `json:"links,omitempty" bson:"links,omitempty"`

	PreviousOrders []primitive.ObjectID `json:"previousOrders,omitempty" bson:"previousOrders,omitempty"`

	Logo                string              `json:"logo,omitempty" bson:"logo,omitempty"`
	AssignedEmployeeId  *primitive.ObjectID `json:"assignedEmployeeId,omitempty" bson:"assignedEmployeeId,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`

	// Ràng buộc xóa: chặn xóa công ty còn hoạt động outreach tham chiếu
	_Relationships struct{} `relationship:"collection:outreaches,field:companyId,message:Không thể xóa công ty vì còn %d hoạt động outreach"`
}
