package hrsvc

import (
	"fmt"
	"math"
	"time"
)

// TruncateToDay đưa một mốc unix milliseconds về 00:00:00 UTC của ngày đó.
func TruncateToDay(ms int64) int64 {
	t := time.UnixMilli(ms).UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.UnixMilli()
}

// HoursBetween trả về số giờ giữa checkIn và checkOut (unix ms).
// Trả về 0 nếu thiếu một trong hai hoặc checkOut trước checkIn.
func HoursBetween(checkIn, checkOut int64) float64 {
	if checkIn == 0 || checkOut == 0 || checkOut < checkIn {
		return 0
	}
	return float64(checkOut-checkIn) / float64(time.Hour.Milliseconds())
}

// MonthWindow trả về cửa sổ [đầu tháng, đầu tháng sau) theo UTC cho tháng "YYYY-MM".
// month rỗng thì dùng tháng chứa now. Nhãn trả về luôn ở dạng "YYYY-MM".
func MonthWindow(month string, now time.Time) (start, end time.Time, label string, err error) {
	var year int
	var m time.Month
	if month == "" {
		year, m = now.UTC().Year(), now.UTC().Month()
	} else {
		t, parseErr := time.Parse("2006-01", month)
		if parseErr != nil {
			return time.Time{}, time.Time{}, "", fmt.Errorf("tháng không hợp lệ (định dạng YYYY-MM): %w", parseErr)
		}
		year, m = t.Year(), t.Month()
	}
	start = time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	label = start.Format("2006-01")
	return start, end, label, nil
}

// AttendanceRate tính tỉ lệ chuyên cần: round(100 * (present+late+halfDay) / max(1, tổng)).
// Kết quả luôn là số nguyên trong [0, 100], kể cả khi mọi count bằng 0.
func AttendanceRate(present, absent, late, halfDay, onLeave int) int {
	total := present + absent + late + halfDay + onLeave
	if total < 1 {
		total = 1
	}
	worked := present + late + halfDay
	return int(math.Round(float64(worked) / float64(total) * 100))
}

// RoundHours làm tròn tổng số giờ về một chữ số thập phân.
func RoundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}
