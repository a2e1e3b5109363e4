package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/muhammedanshifpoothanari/adminKiswa/internal/api/events"
	"github.com/muhammedanshifpoothanari/adminKiswa/internal/logger"
)

// InitDataEvents đăng ký các handler phản ứng với event thay đổi dữ liệu từ base service.
// Hiện tại chỉ ghi audit log; handler chạy trong goroutine có recover nên không chặn request.
func InitDataEvents() {
	events.OnDataChanged(func(_ context.Context, e events.DataChangeEvent) {
		logger.GetAuditLogger().WithFields(logrus.Fields{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}).Info("Data changed")
	})

	logger.GetAppLogger().Info("Registered data-change event handlers")
}
