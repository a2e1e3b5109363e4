package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry đã gắn thông tin request: request ID, method, path, IP.
// Request ID lấy từ Locals (requestid middleware) hoặc header X-Request-ID.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}

	return GetAppLogger().WithFields(logrus.Fields{
		"requestId": requestID,
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
	})
}
