// Package models - model cho domain analytics.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Các loại sự kiện analytics phía storefront gửi lên.
const (
	EventTypePageView    = "page_view"
	EventTypeProductView = "product_view"
	EventTypeAddToCart   = "add_to_cart"
	EventTypeCheckout    = "checkout"
	EventTypePurchase    = "purchase"
)

// EventDevice là thông tin thiết bị parse từ user-agent.
type EventDevice struct {
	Type   string `json:"type,omitempty" bson:"type,omitempty"`
	Vendor string `json:"vendor,omitempty" bson:"vendor,omitempty"`
	Model  string `json:"model,omitempty" bson:"model,omitempty"`
}

// EventOs là hệ điều hành của client.
type EventOs struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Version string `json:"version,omitempty" bson:"version,omitempty"`
}

// EventBrowser là trình duyệt của client.
type EventBrowser struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Version string `json:"version,omitempty" bson:"version,omitempty"`
	Major   string `json:"major,omitempty" bson:"major,omitempty"`
}

// EventEngine là engine render của trình duyệt.
type EventEngine struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Version string `json:"version,omitempty" bson:"version,omitempty"`
}

// EventCpu là kiến trúc CPU của client.
type EventCpu struct {
	Architecture string `json:"architecture,omitempty" bson:"architecture,omitempty"`
}

// EventLocation là vị trí địa lý ước lượng từ IP.
type EventLocation struct {
	Country   string  `json:"country,omitempty" bson:"country,omitempty"`
	Region    string  `json:"region,omitempty" bson:"region,omitempty"`
	City      string  `json:"city,omitempty" bson:"city,omitempty"`
	Latitude  float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Timezone  string  `json:"timezone,omitempty" bson:"timezone,omitempty"`
}

// AnalyticsEvent là một sự kiện hành vi người dùng trên storefront.
// Timestamp là thời điểm sự kiện xảy ra phía client (unix milli),
// phân biệt với CreatedAt là thời điểm server nhận.
type AnalyticsEvent struct {
	ID        primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	EventType string                 `json:"eventType" bson:"eventType" index:"single:1"`
	Url       string                 `json:"url" bson:"url"`
	Timestamp int64                  `json:"timestamp" bson:"timestamp" index:"single:1,order:-1"`
	SessionId string                 `json:"sessionId" bson:"sessionId" index:"single:1"`
	UserId    string                 `json:"userId,omitempty" bson:"userId,omitempty" index:"single:1"`
	Ip        string                 `json:"ip,omitempty" bson:"ip,omitempty"`
	Device    *EventDevice           `json:"device,omitempty" bson:"device,omitempty"`
	Os        *EventOs               `json:"os,omitempty" bson:"os,omitempty"`
	Browser   *EventBrowser          `json:"browser,omitempty" bson:"browser,omitempty"`
	Engine    *EventEngine           `json:"engine,omitempty" bson:"engine,omitempty"`
	Cpu       *EventCpu              `json:"cpu,omitempty" bson:"cpu,omitempty"`
	Location  *EventLocation         `json:"location,omitempty" bson:"location,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt int64                  `json:"createdAt,omitempty" bson:"createdAt,omitempty" index:"single:1"`
	UpdatedAt int64                  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
