// Package common chứa hệ thống mã lỗi và HTTP status dùng chung cho toàn bộ API.
package common

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// 2xx - Success
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// 4xx - Client Errors
	StatusBadRequest       = 400 // Yêu cầu không hợp lệ
	StatusNotFound         = 404 // Không tìm thấy tài nguyên
	StatusMethodNotAllowed = 405 // Phương thức HTTP không được hỗ trợ
	StatusConflict         = 409 // Xung đột dữ liệu
	StatusTooManyRequests  = 429 // Quá nhiều yêu cầu

	// 5xx - Server Errors
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Message Constants
const (
	MsgSuccess         = "Thao tác thành công"
	MsgValidationError = "Dữ liệu không hợp lệ"

	MsgMongoConnection = "Không thể kết nối đến cơ sở dữ liệu"
	MsgMongoNetwork    = "Lỗi mạng khi truy cập cơ sở dữ liệu"
	MsgMongoTimeout    = "Hết thời gian chờ truy vấn cơ sở dữ liệu"
	MsgMongoQuery      = "Lỗi truy vấn cơ sở dữ liệu"
	MsgMongoCursor     = "Không tìm thấy dữ liệu"
	MsgMongoWrite      = "Lỗi ghi dữ liệu"
	MsgMongoDuplicate  = "Dữ liệu đã tồn tại"
)

// ErrorCode định nghĩa cấu trúc một mã lỗi trong hệ thống.
// Mã lỗi có dạng ERR_<CATEGORY>_<SUBCATEGORY> để client phân biệt được loại lỗi.
type ErrorCode struct {
	Code        string // Mã lỗi đầy đủ, ví dụ ERR_VALIDATION_INPUT
	Category    string // Nhóm lỗi chính
	SubCategory string // Nhóm lỗi phụ
	Description string // Mô tả ngắn gọn
}

var (
	// ErrCodeInternalServer - lỗi hệ thống không xác định
	ErrCodeInternalServer = ErrorCode{
		Code:        "ERR_INTERNAL",
		Category:    "system",
		Description: "Lỗi hệ thống không xác định",
	}

	// ErrCodeValidation - nhóm lỗi validate dữ liệu
	ErrCodeValidation = ErrorCode{
		Code:        "ERR_VALIDATION",
		Category:    "validation",
		Description: "Lỗi validate dữ liệu",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "ERR_VALIDATION_INPUT",
		Category:    "validation",
		SubCategory: "input",
		Description: "Dữ liệu đầu vào không hợp lệ",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "ERR_VALIDATION_FORMAT",
		Category:    "validation",
		SubCategory: "format",
		Description: "Định dạng dữ liệu không hợp lệ",
	}

	// ErrCodeDatabase - nhóm lỗi cơ sở dữ liệu
	ErrCodeDatabase = ErrorCode{
		Code:        "ERR_DATABASE",
		Category:    "database",
		Description: "Lỗi cơ sở dữ liệu",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "ERR_DATABASE_CONNECTION",
		Category:    "database",
		SubCategory: "connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "ERR_DATABASE_QUERY",
		Category:    "database",
		SubCategory: "query",
		Description: "Lỗi truy vấn cơ sở dữ liệu",
	}

	// ErrCodeBusiness - nhóm lỗi nghiệp vụ
	ErrCodeBusiness = ErrorCode{
		Code:        "ERR_BUSINESS",
		Category:    "business",
		Description: "Lỗi nghiệp vụ",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "ERR_BUSINESS_STATE",
		Category:    "business",
		SubCategory: "state",
		Description: "Trạng thái không hợp lệ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "ERR_BUSINESS_OPERATION",
		Category:    "business",
		SubCategory: "operation",
		Description: "Thao tác không hợp lệ",
	}
)

// Error là lỗi chuẩn của ứng dụng, mang theo mã lỗi, HTTP status và chi tiết.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

// Error triển khai interface error.
func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code.Code, e.Message)
}

// Is so sánh hai lỗi theo mã lỗi và message, dùng cho errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code.Code == t.Code.Code && e.Message == t.Message
	}
	return false
}

// NewError tạo một *Error mới (trả về error để dùng trực tiếp trong return).
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Các lỗi định nghĩa sẵn
var (
	// Validation errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "Email không đúng định dạng", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConstraint = NewError(ErrCodeDatabaseQuery, "Vi phạm ràng buộc dữ liệu", StatusBadRequest, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)

	// Business errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Trạng thái không hợp lệ", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Thao tác không hợp lệ", StatusBadRequest, nil)

	// Mongo errors (dùng bởi ConvertMongoError)
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, MsgMongoConnection, StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusServiceUnavailable, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgMongoQuery, StatusInternalServerError, nil)
	ErrMongoCursor     = NewError(ErrCodeDatabaseQuery, MsgMongoCursor, StatusNotFound, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, MsgMongoWrite, StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, nil)
)

// ConvertMongoError chuyển lỗi của mongo driver thành *Error của ứng dụng.
// Mọi service đi qua hàm này để client nhận được mã lỗi thống nhất.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Đã là lỗi ứng dụng thì giữ nguyên
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	// Không tìm thấy document
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// Trùng khóa unique
	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}

	// Timeout / context
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}
	if errors.Is(err, context.Canceled) {
		return ErrMongoTimeout
	}

	// Lỗi mạng
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}

	// Lỗi ghi
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == 11000 || we.Code == 11001 {
				return ErrMongoDuplicate
			}
		}
		return ErrMongoWrite
	}

	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) {
		for _, we := range bulkErr.WriteErrors {
			if we.Code == 11000 || we.Code == 11001 {
				return ErrMongoDuplicate
			}
		}
		return ErrMongoWrite
	}

	// Lỗi command
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.HasErrorLabel("NetworkError") {
			return ErrMongoNetwork
		}
		return ErrMongoQuery
	}

	if strings.Contains(err.Error(), "connection") {
		return ErrMongoConnection
	}

	return NewError(ErrCodeDatabase, err.Error(), StatusInternalServerError, nil)
}
