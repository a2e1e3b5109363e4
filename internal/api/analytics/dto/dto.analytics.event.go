// Package dto - DTO cho domain analytics.
package dto

import (
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/models"
)

// EventCreateInput là dữ liệu ingest một sự kiện analytics.
type EventCreateInput struct {
	EventType string                 `json:"eventType" validate:"required"`
	Url       string                 `json:"url" validate:"required"`
	Timestamp int64                  `json:"timestamp,omitempty" validate:"omitempty"`
	SessionId string                 `json:"sessionId" validate:"required"`
	UserId    string                 `json:"userId,omitempty" validate:"omitempty"`
	Ip        string                 `json:"ip,omitempty" validate:"omitempty"`
	Device    *models.EventDevice    `json:"device,omitempty" validate:"omitempty"`
	Os        *models.EventOs        `json:"os,omitempty" validate:"omitempty"`
	Browser   *models.EventBrowser   `json:"browser,omitempty" validate:"omitempty"`
	Engine    *models.EventEngine    `json:"engine,omitempty" validate:"omitempty"`
	Cpu       *models.EventCpu       `json:"cpu,omitempty" validate:"omitempty"`
	Location  *models.EventLocation  `json:"location,omitempty" validate:"omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" validate:"omitempty"`
}

// EventUpdateInput tồn tại để thỏa generic của base handler;
// sự kiện analytics chỉ ingest, không có route update.
type EventUpdateInput struct {
	Metadata map[string]interface{} `json:"metadata,omitempty" validate:"omitempty"`
}

// ProductViewStat là số lượt xem của một sản phẩm.
type ProductViewStat struct {
	Name  string `json:"name" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// DeviceStat là số page view theo loại thiết bị.
type DeviceStat struct {
	Name  string `json:"name" bson:"_id"`
	Value int64  `json:"value" bson:"value"`
}

// StatsResponse là kết quả tổng hợp analytics cho dashboard admin.
type StatsResponse struct {
	TotalPageViews int64                   `json:"totalPageViews"`
	UniqueSessions int                     `json:"uniqueSessions"`
	TopProducts    []ProductViewStat       `json:"topProducts"`
	DeviceStats    []DeviceStat            `json:"deviceStats"`
	RecentActivity []models.AnalyticsEvent `json:"recentActivity"`
}
