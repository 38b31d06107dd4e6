package errors

import (
	"fmt"
	"net/http"
	"strconv"

	"statistics/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is reports whether target carries the same error code, so a copy made by
// WithDetails still matches its predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Remark statistics errors
	ErrRemarkStatisticsNotFound = NewBaseError(
		http.StatusNotFound,
		"REMARK_STATISTICS_NOT_FOUND",
		"找不到該回報的統計資料",
		"",
	)

	ErrRemarkStatisticsAlreadyExists = NewBaseError(
		http.StatusConflict,
		"REMARK_STATISTICS_ALREADY_EXISTS",
		"該回報的統計資料已存在",
		"",
	)

	// ErrInvalidArgument is the sentinel matched by every InvalidArgumentError.
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"參數值不合法",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// InvalidArgumentError reports a parameter whose value is outside its domain,
// e.g. a latitude beyond [-90, 90].
type InvalidArgumentError struct {
	param string
	value any
}

// NewInvalidArgumentError creates an InvalidArgumentError for the named parameter.
func NewInvalidArgumentError(param string, value any) *InvalidArgumentError {
	return &InvalidArgumentError{
		param: param,
		value: value,
	}
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %s", e.param, formatValue(e.value))
}

// Is lets errors.Is match the ErrInvalidArgument sentinel.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Param returns the name of the offending parameter
func (e *InvalidArgumentError) Param() string {
	return e.param
}

// Value returns the rejected value
func (e *InvalidArgumentError) Value() any {
	return e.value
}

// HTTPCode returns the HTTP status code
func (e *InvalidArgumentError) HTTPCode() int {
	return ErrInvalidArgument.HTTPCode()
}

// ErrorCode returns the business error code
func (e *InvalidArgumentError) ErrorCode() string {
	return ErrInvalidArgument.ErrorCode()
}

// Message returns the user-friendly error message
func (e *InvalidArgumentError) Message() string {
	return ErrInvalidArgument.Message()
}

// Details returns detailed error information
func (e *InvalidArgumentError) Details() string {
	return e.Error()
}

func formatValue(value any) string {
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return fmt.Sprint(value)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
