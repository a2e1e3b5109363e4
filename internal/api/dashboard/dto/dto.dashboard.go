// Package dto - DTO cho domain dashboard.
package dto

import (
	ordersdto "github.com/muhammedanshifpoothanari/adminKiswa/internal/api/orders/dto"
)

// RevenueStat là doanh thu tháng hiện tại so với tháng trước.
type RevenueStat struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

// CountStat là số lượng lũy kế kèm biến động theo tháng.
type CountStat struct {
	Value     int64   `json:"value"`
	ThisMonth int64   `json:"thisMonth"`
	Change    float64 `json:"change"`
	Trend     string  `json:"trend"`
}

// TopProduct là sản phẩm bán chạy gom từ items của đơn hàng.
type TopProduct struct {
	Name     string  `json:"name" bson:"_id"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Total    float64 `json:"total" bson:"total"`
}

// DashboardStats là khối số liệu đầu trang dashboard.
type DashboardStats struct {
	Revenue        RevenueStat `json:"revenue"`
	Orders         CountStat   `json:"orders"`
	Customers      CountStat   `json:"customers"`
	Products       int64       `json:"products"`
	ActiveSessions int         `json:"activeSessions"`
}

// DashboardResponse là toàn bộ dữ liệu trang dashboard.
type DashboardResponse struct {
	Stats        DashboardStats                `json:"stats"`
	RecentOrders []ordersdto.OrderWithCustomer `json:"recentOrders"`
	TopProducts  []TopProduct                  `json:"topProducts"`
}
