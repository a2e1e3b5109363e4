package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đăng ký nhận tin
const (
	SubscriberStatusSubscribed   = "subscribed"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

// Subscriber lưu người đăng ký nhận bản tin (collection subscribers).
type Subscriber struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Email  string `json:"email" bson:"email" index:"unique"`
	Status string `json:"status" bson:"status" default:"subscribed"`

	// Thời điểm đăng ký, mặc định là lúc tạo record
	SubscribedAt int64 `json:"subscribedAt" bson:"subscribedAt"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
