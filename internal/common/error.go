package common

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: DB_001)
	Category    string // Phân loại lỗi (ví dụ: Database)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// Configuration Errors (CFG_xxx)
	ErrCodeConfiguration = ErrorCode{
		Code:        "CFG_001",
		Category:    "Configuration",
		Description: "Thiếu hoặc sai thông tin cấu hình",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		Description: "Không kết nối hoặc không xác thực được với MongoDB",
	}
	ErrCodeSchemaConflict = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		Description: "Index đã tồn tại với cấu hình khác",
	}
	ErrCodeDatabase = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		Description: "Lỗi tương tác với cơ sở dữ liệu",
	}

	// Schema Errors (SCH_xxx)
	ErrCodeInvalidCatalog = ErrorCode{
		Code:        "SCH_001",
		Category:    "Schema",
		Description: "Danh mục collection/index không hợp lệ",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code    ErrorCode // Mã lỗi chi tiết
	Message string    // Thông báo lỗi
	Details any       // Thông tin chi tiết thêm về lỗi
	Err     error     // Lỗi gốc (nếu có)
}

// Error trả về message của lỗi, kèm lỗi gốc nếu có
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap trả về lỗi gốc (hỗ trợ errors.Is / errors.As xuyên qua lỗi driver)
func (e *Error) Unwrap() error {
	return e.Err
}

// Is so sánh theo mã lỗi, nên mọi lỗi tạo từ Wrap(ErrX, ...) đều khớp errors.Is(err, ErrX)
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, details any) error {
	return &Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap gắn lỗi gốc err vào một lỗi hệ thống base.
// message rỗng thì dùng lại message của base.
func Wrap(base error, err error, message string) error {
	var b *Error
	if !errors.As(base, &b) {
		return fmt.Errorf("%s: %w", message, err)
	}
	if message == "" {
		message = b.Message
	}
	return &Error{
		Code:    b.Code,
		Message: message,
		Details: b.Details,
		Err:     err,
	}
}

// Custom errors
var (
	ErrConfiguration  = NewError(ErrCodeConfiguration, "configuration error", nil)
	ErrConnection     = NewError(ErrCodeDatabaseConnection, "cannot reach MongoDB", nil)
	ErrSchemaConflict = NewError(ErrCodeSchemaConflict, "index conflicts with an existing index", nil)
	ErrDatabase       = NewError(ErrCodeDatabase, "database operation failed", nil)
	ErrInvalidCatalog = NewError(ErrCodeInvalidCatalog, "invalid provisioning catalog", nil)
)

// MongoDB server error codes dùng để phân loại lỗi
const (
	MongoCodeUnauthorized          = 13
	MongoCodeAuthenticationFailed  = 18
	MongoCodeNamespaceExists       = 48
	MongoCodeIndexAlreadyExists    = 68
	MongoCodeIndexOptionsConflict  = 85
	MongoCodeIndexKeySpecsConflict = 86
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống.
// Lỗi đã là *Error thì giữ nguyên.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var sysErr *Error
	if errors.As(err, &sysErr) {
		return err
	}

	// Kiểm tra các loại lỗi MongoDB cụ thể
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		switch {
		case serverErr.HasErrorCode(MongoCodeIndexOptionsConflict),
			serverErr.HasErrorCode(MongoCodeIndexKeySpecsConflict),
			serverErr.HasErrorCode(MongoCodeIndexAlreadyExists):
			return Wrap(ErrSchemaConflict, err, "")
		case serverErr.HasErrorCode(MongoCodeUnauthorized),
			serverErr.HasErrorCode(MongoCodeAuthenticationFailed):
			return Wrap(ErrConnection, err, "MongoDB rejected the credentials")
		}
	}

	// Lỗi mạng / timeout / không chọn được server
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, mongo.ErrClientDisconnected) {
		return Wrap(ErrConnection, err, "")
	}
	if isServerSelectionError(err) {
		return Wrap(ErrConnection, err, "")
	}

	return Wrap(ErrDatabase, err, "")
}

// isServerSelectionError nhận diện lỗi không chọn được server của driver
func isServerSelectionError(err error) bool {
	var selErr topology.ServerSelectionError
	return errors.As(err, &selErr)
}

// IsNamespaceExists kiểm tra lỗi "collection đã tồn tại" (code 48)
func IsNamespaceExists(err error) bool {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorCode(MongoCodeNamespaceExists)
	}
	return false
}

// Exit codes cho từng nhóm lỗi
const (
	ExitSuccess        = 0
	ExitConfiguration  = 1
	ExitConnection     = 2
	ExitSchemaConflict = 3
	ExitInvalidCatalog = 4
	ExitDatabase       = 5
)

// ExitCode trả về mã thoát của process tương ứng với lỗi
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, ErrConnection):
		return ExitConnection
	case errors.Is(err, ErrSchemaConflict):
		return ExitSchemaConflict
	case errors.Is(err, ErrInvalidCatalog):
		return ExitInvalidCatalog
	default:
		return ExitDatabase
	}
}
