// Package errors provides standardized error handling for the generation pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"

	ErrCodeCapabilityUnavailable ErrorCode = "CAPABILITY_UNAVAILABLE"
	ErrCodeGenerationTimeout     ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeSynthesisFailed       ErrorCode = "SYNTHESIS_FAILED"
	ErrCodeTaskFailed            ErrorCode = "TASK_FAILED"

	ErrCodeSinkWriteFailed        ErrorCode = "SINK_WRITE_FAILED"
	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeWarehouseLoadFailed    ErrorCode = "WAREHOUSE_LOAD_FAILED"
	ErrCodeIndexLoadFailed        ErrorCode = "INDEX_LOAD_FAILED"
	ErrCodePublishFailed          ErrorCode = "PUBLISH_FAILED"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeNotifyFailed     ErrorCode = "NOTIFY_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidConfigError creates a non-retryable configuration error. This is
// the only error class that aborts a run before generation starts.
func NewInvalidConfigError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidConfig,
		Message:   "Invalid pipeline configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCapabilityUnavailableError creates a non-retryable generator setup error.
// Callers recover by switching to the template path, never by failing the run.
func NewCapabilityUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCapabilityUnavailable,
		Message:   "Generative capability unavailable",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationTimeoutError creates a retryable generation timeout error.
func NewGenerationTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationTimeout,
		Message:   "Generative call exceeded its timeout",
		Details:   "call exceeded configured timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSynthesisFailedError creates a retryable synthesis error. Synthesis
// errors degrade to the template path at single-item granularity.
func NewSynthesisFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSynthesisFailed,
		Message:   "Content synthesis error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTaskFailedError creates a non-retryable task error. The coordinator
// drops the item, counts it, and keeps going.
func NewTaskFailedError(stream string, index int, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTaskFailed,
		Message:   "Generation task failed",
		Details:   fmt.Sprintf("stream: %s, index: %d, error: %s", stream, index, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSinkWriteFailedError creates a retryable file sink error.
func NewSinkWriteFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSinkWriteFailed,
		Message:   "Dataset file write failed",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationFailedError creates a non-retryable record schema error.
func NewSchemaValidationFailedError(stream, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   "Generated record failed schema validation",
		Details:   fmt.Sprintf("stream: %s, %s", stream, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWarehouseLoadFailedError creates a retryable warehouse sink error.
func NewWarehouseLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWarehouseLoadFailed,
		Message:   "Warehouse load failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewIndexLoadFailedError creates a retryable search index sink error.
func NewIndexLoadFailedError(index string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIndexLoadFailed,
		Message:   "Search index load failed",
		Details:   fmt.Sprintf("index: %s, error: %s", index, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPublishFailedError creates a retryable stream publish error.
func NewPublishFailedError(topic string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePublishFailed,
		Message:   "Record publish failed",
		Details:   fmt.Sprintf("topic: %s, error: %s", topic, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a non-retryable cache error. The cache is
// an optimization; callers continue without it.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Response cache unavailable",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotifyFailedError creates a retryable notification error.
func NewNotifyFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotifyFailed,
		Message:   "Run notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSynthesisFailed,
		ErrCodeSinkWriteFailed,
		ErrCodeWarehouseLoadFailed,
		ErrCodeIndexLoadFailed,
		ErrCodePublishFailed,
		ErrCodeNotifyFailed:
		return 3

	case ErrCodeGenerationTimeout:
		return 1

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CONFIG"):
		return "CONFIG"
	case strings.Contains(codeStr, "CAPABILITY") || strings.Contains(codeStr, "GENERATION") || strings.Contains(codeStr, "SYNTHESIS"):
		return "SYNTHESIS"
	case strings.Contains(codeStr, "TASK"):
		return "COORDINATOR"
	case strings.Contains(codeStr, "SINK") || strings.Contains(codeStr, "WAREHOUSE") || strings.Contains(codeStr, "INDEX") || strings.Contains(codeStr, "PUBLISH"):
		return "SINK"
	case strings.Contains(codeStr, "SCHEMA") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "NOTIFY"):
		return "NOTIFICATION"
	default:
		return "OTHER"
	}
}
