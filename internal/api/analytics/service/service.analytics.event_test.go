// Package analyticssvc - Test pipeline thống kê sản phẩm được xem.
package analyticssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/analytics/models"
)

func TestTopViewedProductsPipeline_BucketsMissingName(t *testing.T) {
	pipeline := TopViewedProductsPipeline(5)

	var match, group bson.M
	for _, stage := range pipeline {
		if m, ok := stage["$match"].(bson.M); ok {
			match = m
		}
		if g, ok := stage["$group"].(bson.M); ok {
			group = g
		}
	}
	if match == nil || group == nil {
		t.Fatal("pipeline phải có stage $match và $group")
	}

	// Chỉ lọc theo loại sự kiện; sự kiện thiếu metadata.name không bị loại khỏi thống kê
	assert.Equal(t, models.EventTypeProductView, match["eventType"])
	assert.NotContains(t, match, "metadata.name")

	// Sự kiện thiếu tên phải được gom thành Unknown Product
	assert.Equal(t, bson.M{"$ifNull": []interface{}{"$metadata.name", UnknownProductName}}, group["_id"])
}

func TestTopViewedProductsPipeline_Limit(t *testing.T) {
	pipeline := TopViewedProductsPipeline(5)
	last := pipeline[len(pipeline)-1]
	assert.Equal(t, int64(5), last["$limit"])
}
