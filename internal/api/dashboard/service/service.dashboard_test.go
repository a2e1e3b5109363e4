// Package dashboardsvc - Test các hàm thuần tính biến động tháng.
package dashboardsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	ordersmodels "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/models"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"tháng trước bằng 0 thì trả 0", 500, 0, 0},
		{"cả hai bằng 0 thì trả 0", 0, 0, 0},
		{"tăng 50%", 150, 100, 50},
		{"giảm 25%", 75, 100, -25},
		{"làm tròn một chữ số", 133, 100, 33},
		{"làm tròn phần lẻ", 100, 300, -66.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestTrendOf(t *testing.T) {
	if TrendOf(12.5) != TrendUp {
		t.Error("biến động dương phải là trend up")
	}
	// Đi ngang tính là tăng
	if TrendOf(0) != TrendUp {
		t.Error("biến động 0 phải là trend up")
	}
	if TrendOf(-0.1) != TrendDown {
		t.Error("biến động âm phải là trend down")
	}
}

func TestMonthWindows(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	lastStart, thisStart := MonthWindows(now)
	if thisStart != time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("thisStart = %d, muốn đầu tháng 3", thisStart)
	}
	// Tháng trước tính bằng calendar arithmetic, không phải trừ 30 ngày
	if lastStart != time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("lastStart = %d, muốn đầu tháng 2", lastStart)
	}
}

func TestPaidWindowFilter_OnlyPaidOrdersCounted(t *testing.T) {
	filter := PaidWindowFilter(1000, 2000)

	// Đơn pending/failed không được lọt vào doanh thu lẫn số đơn theo tháng
	assert.Equal(t, ordersmodels.PaymentStatusPaid, filter["paymentStatus"])
	assert.Equal(t, bson.M{"$gte": int64(1000), "$lt": int64(2000)}, filter["createdAt"])
}

func TestTopProductsPipeline_BucketsMissingName(t *testing.T) {
	pipeline := TopProductsPipeline(4)

	var group bson.M
	for _, stage := range pipeline {
		if g, ok := stage["$group"].(bson.M); ok {
			group = g
		}
	}
	if group == nil {
		t.Fatal("pipeline phải có stage $group")
	}
	// Item thiếu tên phải được gom thành Unknown Product, không rơi thành nhóm rỗng
	assert.Equal(t, bson.M{"$ifNull": []interface{}{"$items.name", UnknownProductName}}, group["_id"])

	last := pipeline[len(pipeline)-1]
	assert.Equal(t, int64(4), last["$limit"])
}

func TestMonthWindows_JanuaryRollsToPreviousYear(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	lastStart, thisStart := MonthWindows(now)
	if thisStart != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("thisStart = %d, muốn đầu tháng 1/2024", thisStart)
	}
	if lastStart != time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("lastStart = %d, muốn đầu tháng 12/2023", lastStart)
	}
}
