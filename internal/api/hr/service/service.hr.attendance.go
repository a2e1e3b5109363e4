package hrsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	dto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/dto"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/utility"
)

// AttendanceService xử lý nghiệp vụ chấm công: check-in theo ngày và báo cáo tháng.
type AttendanceService struct {
	*basesvc.BaseServiceMongoImpl[models.Attendance]
	employeeColl *mongo.Collection
}

// NewAttendanceService tạo AttendanceService mới.
func NewAttendanceService() (*AttendanceService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Attendances)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Attendances, common.ErrNotFound)
	}
	employeeColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Employees, common.ErrNotFound)
	}
	return &AttendanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Attendance](coll),
		employeeColl:         employeeColl,
	}, nil
}

// CheckIn upsert bản ghi chấm công theo (employeeId, ngày).
// Date được truncate về 00:00 UTC; hoursWorked suy ra từ checkIn/checkOut khi có đủ cả hai.
func (s *AttendanceService) CheckIn(ctx context.Context, input *dto.AttendanceCheckInInput) (models.Attendance, error) {
	var zero models.Attendance

	employeeID := utility.String2ObjectID(input.EmployeeId)
	if employeeID.IsZero() {
		return zero, common.NewError(common.ErrCodeValidationInput, "employeeId không hợp lệ", common.StatusBadRequest, nil)
	}

	// Nhân viên phải tồn tại trước khi chấm công
	count, err := s.employeeColl.CountDocuments(ctx, bson.M{"_id": employeeID})
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	if count == 0 {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy nhân viên", common.StatusNotFound, nil)
	}

	day := TruncateToDay(input.Date)

	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"employeeId": employeeID,
		"date":       day,
	}}
	if input.CheckIn > 0 {
		update.Set["checkIn"] = input.CheckIn
	}
	if input.CheckOut > 0 {
		update.Set["checkOut"] = input.CheckOut
	}
	if hours := HoursBetween(input.CheckIn, input.CheckOut); hours > 0 {
		update.Set["hoursWorked"] = hours
	}
	if input.Status != "" {
		update.Set["status"] = input.Status
	}
	if input.Notes != "" {
		update.Set["notes"] = input.Notes
	}

	filter := bson.M{"employeeId": employeeID, "date": day}
	return s.Upsert(ctx, filter, update)
}

// FindWithEmployee trả về bản ghi chấm công kèm nhân viên đã populate.
// employeeId và khoảng [startDate, endDate] (unix ms) đều tùy chọn.
func (s *AttendanceService) FindWithEmployee(ctx context.Context, employeeId string, startDate, endDate int64) ([]dto.AttendanceWithEmployee, error) {
	match := bson.M{}
	if employeeId != "" {
		oid := utility.String2ObjectID(employeeId)
		if oid.IsZero() {
			return nil, common.NewError(common.ErrCodeValidationInput, "employeeId không hợp lệ", common.StatusBadRequest, nil)
		}
		match["employeeId"] = oid
	}
	if startDate > 0 && endDate > 0 {
		match["date"] = bson.M{"$gte": startDate, "$lte": endDate}
	} else if startDate > 0 {
		match["date"] = bson.M{"$gte": startDate}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"date": -1}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Employees,
			"localField":   "employeeId",
			"foreignField": "_id",
			"as":           "employee",
		}},
		{"$unwind": bson.M{"path": "$employee", "preserveNullAndEmptyArrays": true}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]dto.AttendanceWithEmployee, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// MonthlyReport tổng hợp chấm công theo tháng cho toàn bộ nhân viên đang hoạt động.
// month dạng "YYYY-MM", rỗng thì lấy tháng hiện tại.
func (s *AttendanceService) MonthlyReport(ctx context.Context, month string) (*dto.AttendanceReportResponse, error) {
	start, end, label, err := MonthWindow(month, time.Now())
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}
	startMs, endMs := start.UnixMilli(), end.UnixMilli()

	// Toàn bộ nhân viên đang hoạt động
	empCursor, err := s.employeeColl.Find(ctx, bson.M{"status": models.EmployeeStatusActive})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	var employees []models.Employee
	if err := empCursor.All(ctx, &employees); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Toàn bộ bản ghi chấm công trong cửa sổ [đầu tháng, đầu tháng sau)
	records, err := s.Find(ctx, bson.M{"date": bson.M{"$gte": startMs, "$lt": endMs}}, nil)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]models.Attendance, len(employees))
	for _, rec := range records {
		key := rec.EmployeeId.Hex()
		byEmployee[key] = append(byEmployee[key], rec)
	}

	report := make([]dto.EmployeeAttendanceReport, 0, len(employees))
	var rateSum, hoursSum float64
	for _, emp := range employees {
		stats := buildAttendanceStats(byEmployee[emp.ID.Hex()])
		report = append(report, dto.EmployeeAttendanceReport{
			Employee: dto.EmployeeReportRef{
				ID:         emp.ID,
				Name:       emp.FirstName + " " + emp.LastName,
				Department: emp.Department,
				Role:       emp.Role,
			},
			Stats: stats,
		})
		rateSum += float64(stats.AttendanceRate)
		hoursSum += stats.TotalHours
	}

	summary := dto.AttendanceReportSummary{
		EmployeeCount: len(employees),
		TotalHours:    RoundHours(hoursSum),
	}
	if len(employees) > 0 {
		summary.AvgAttendanceRate = RoundHours(rateSum / float64(len(employees)))
	}

	return &dto.AttendanceReportResponse{
		Month:     label,
		StartDate: startMs,
		EndDate:   endMs,
		Report:    report,
		Summary:   summary,
	}, nil
}

// buildAttendanceStats gom số liệu chấm công của một nhân viên trong tháng.
func buildAttendanceStats(records []models.Attendance) dto.AttendanceStats {
	var stats dto.AttendanceStats
	var hours float64
	for _, rec := range records {
		switch rec.Status {
		case models.AttendanceStatusPresent:
			stats.Present++
		case models.AttendanceStatusAbsent:
			stats.Absent++
		case models.AttendanceStatusLate:
			stats.Late++
		case models.AttendanceStatusHalfDay:
			stats.HalfDay++
		case models.AttendanceStatusOnLeave:
			stats.OnLeave++
		}
		hours += rec.HoursWorked
	}
	stats.TotalDays = stats.Present + stats.Late + stats.HalfDay
	stats.TotalHours = RoundHours(hours)
	stats.AttendanceRate = AttendanceRate(stats.Present, stats.Absent, stats.Late, stats.HalfDay, stats.OnLeave)
	return stats
}
