package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái chiến dịch outreach
const (
	OutreachStatusActive    = "active"
	OutreachStatusCompleted = "completed"
	OutreachStatusPaused    = "paused"
)

// Loại hoạt động outreach
const (
	OutreachActivityCall     = "call"
	OutreachActivityEmail    = "email"
	OutreachActivityMeeting  = "meeting"
	OutreachActivityDemo     = "demo"
	OutreachActivityFollowUp = "follow-up"
)

// OutreachActivity một hoạt động đã thực hiện trong chiến dịch.
type OutreachActivity struct {
	Type    string `json:"type" bson:"type"`
	Date    int64  `json:"date,omitempty" bson:"date,omitempty"`
	Notes   string `json:"notes,omitempty" bson:"notes,omitempty"`
	Outcome string `json:"outcome,omitempty" bson:"outcome,omitempty"`
}

// Outreach gom các hoạt động tiếp cận một công ty theo tháng (collection outreaches).
// Month là mốc unix ms đầu tháng (00:00 UTC ngày 1).
type Outreach struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CompanyId  primitive.ObjectID `json:"companyId" bson:"companyId" index:"single:1"`
	EmployeeId primitive.ObjectID `json:"employeeId" bson:"employeeId" index:"single:1"`
	Month      int64              `json:"month" bson:"month" index:"single:1"`

	Activities []OutreachActivity `json:"activities,omitempty" bson:"activities,omitempty"`

	Status string `json:"status" bson:"status" default:"active"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
