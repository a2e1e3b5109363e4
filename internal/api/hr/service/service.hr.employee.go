// Package hrsvc - service cho domain hr (employees, attendances).
package hrsvc

import (
	"fmt"

	basesvc "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/base/service"
	models "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/hr/models"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/common"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/global"
)

// EmployeeService xử lý nghiệp vụ nhân viên.
// Ràng buộc xóa (còn chấm công / outreach tham chiếu) khai báo trên model, base service tự kiểm tra.
type EmployeeService struct {
	*basesvc.BaseServiceMongoImpl[models.Employee]
}

// NewEmployeeService tạo EmployeeService mới.
func NewEmployeeService() (*EmployeeService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Employees)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Employees, common.ErrNotFound)
	}
	return &EmployeeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Employee](coll),
	}, nil
}
