// Package hrsvc - Test các hàm thuần tính toán báo cáo chấm công.
package hrsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name    string
		present int
		absent  int
		late    int
		halfDay int
		onLeave int
		want    int
	}{
		{"đủ công cả tháng", 20, 0, 2, 0, 0, 100},
		{"không có bản ghi nào", 0, 0, 0, 0, 0, 0},
		{"nửa tháng vắng", 10, 10, 0, 0, 0, 50},
		{"half day vẫn tính là có làm", 0, 0, 0, 4, 0, 100},
		{"nghỉ phép không tính là có làm", 5, 0, 0, 0, 5, 50},
		{"làm tròn lên", 2, 1, 0, 0, 0, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendanceRate(tt.present, tt.absent, tt.late, tt.halfDay, tt.onLeave)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestMonthWindow_ExplicitMonth(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	start, end, label, err := MonthWindow("2024-02", now)
	if err != nil {
		t.Fatalf("MonthWindow trả về lỗi: %v", err)
	}
	if label != "2024-02" {
		t.Errorf("label = %q, muốn 2024-02", label)
	}
	if start != time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v, muốn đầu tháng 2", start)
	}
	// Năm nhuận: cửa sổ kết thúc ở đầu tháng 3, không phải ngày cố định
	if end != time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("end = %v, muốn đầu tháng 3", end)
	}
}

func TestMonthWindow_DefaultsToNow(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	start, end, label, err := MonthWindow("", now)
	if err != nil {
		t.Fatalf("MonthWindow trả về lỗi: %v", err)
	}
	if label != "2024-12" {
		t.Errorf("label = %q, muốn 2024-12", label)
	}
	if start != time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v, muốn đầu tháng 12", start)
	}
	if end != time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("end = %v, muốn đầu tháng 1 năm sau", end)
	}
}

func TestMonthWindow_InvalidFormat(t *testing.T) {
	_, _, _, err := MonthWindow("2024/02", time.Now())
	if err == nil {
		t.Error("MonthWindow phải trả lỗi với định dạng tháng sai")
	}
}

func TestHoursBetween(t *testing.T) {
	base := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC).UnixMilli()
	tests := []struct {
		name     string
		checkIn  int64
		checkOut int64
		want     float64
	}{
		{"ca 8 tiếng", base, base + 8*3600*1000, 8},
		{"ca 7.5 tiếng", base, base + 7*3600*1000 + 30*60*1000, 7.5},
		{"thiếu checkOut", base, 0, 0},
		{"thiếu checkIn", 0, base, 0},
		{"checkOut trước checkIn", base, base - 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HoursBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	at := time.Date(2024, 6, 3, 17, 45, 12, 0, time.UTC)
	got := TruncateToDay(at.UnixMilli())
	want := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Errorf("TruncateToDay = %d, muốn %d (00:00 UTC cùng ngày)", got, want)
	}
	// Mốc đã ở đầu ngày thì giữ nguyên
	if TruncateToDay(want) != want {
		t.Error("TruncateToDay phải là hàm bất biến trên mốc đầu ngày")
	}
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 7.5, RoundHours(7.54))
	assert.Equal(t, 7.6, RoundHours(7.55))
	assert.Equal(t, 0.0, RoundHours(0))
}
