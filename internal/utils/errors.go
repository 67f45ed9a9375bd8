package utils

import (
	"fmt"
)

type ErrorCode string

const (
	ErrorCodeInvalidURL     ErrorCode = "INVALID_URL"
	ErrorCodeConfiguration  ErrorCode = "CONFIGURATION_ERROR"
	ErrorCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrorCodeAuthentication ErrorCode = "AUTHENTICATION_FAILED"
	ErrorCodeRateLimit      ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrorCodeNoVideoFound   ErrorCode = "NO_VIDEO_FOUND"
	ErrorCodeNetwork        ErrorCode = "NETWORK_ERROR"
	ErrorCodeFileSystem     ErrorCode = "FILESYSTEM_ERROR"
)

// Process exit codes. Anything user-correctable before a network call is
// an input failure; API-side conditions share one code.
const (
	ExitInvalidInput = 1
	ExitAPIFailure   = 2
	ExitFileSystem   = 3
	ExitNetwork      = 4
)

type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	ExitCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Details:  make(map[string]interface{}),
	}
}

func NewErrorWithDetails(code ErrorCode, message string, exitCode int, details map[string]interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Details:  details,
	}
}

// Common error constructors
func NewInvalidURLError(url string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeInvalidURL,
		fmt.Sprintf("The provided URL is not a valid tweet link: %s", url),
		ExitInvalidInput,
		map[string]interface{}{
			"expected_format": "https://twitter.com/<user>/status/<id>",
			"provided":        url,
		},
	)
}

func NewConfigurationError(variable string) *AppError {
	return NewError(
		ErrorCodeConfiguration,
		fmt.Sprintf("Required environment variable %s is not set", variable),
		ExitInvalidInput,
	)
}

func NewValidationError(message string, details map[string]interface{}) *AppError {
	return NewErrorWithDetails(ErrorCodeValidation, message, ExitInvalidInput, details)
}

func NewAuthenticationError(statusCode int) *AppError {
	return NewErrorWithDetails(
		ErrorCodeAuthentication,
		"Twitter API rejected the bearer token",
		ExitAPIFailure,
		map[string]interface{}{
			"status_code": statusCode,
		},
	)
}

func NewRateLimitError() *AppError {
	return NewError(
		ErrorCodeRateLimit,
		"Twitter API request quota exceeded, try again later",
		ExitAPIFailure,
	)
}

func NewNoVideoFoundError(tweetID string) *AppError {
	return NewError(
		ErrorCodeNoVideoFound,
		fmt.Sprintf("Tweet %s has no downloadable video", tweetID),
		ExitAPIFailure,
	)
}

func NewNetworkError(err error) *AppError {
	return NewErrorWithDetails(
		ErrorCodeNetwork,
		"Network request failed",
		ExitNetwork,
		map[string]interface{}{
			"cause": err.Error(),
		},
	)
}

func NewFileSystemError(err error, path string) *AppError {
	return NewErrorWithDetails(
		ErrorCodeFileSystem,
		fmt.Sprintf("Cannot write to %s", path),
		ExitFileSystem,
		map[string]interface{}{
			"path":  path,
			"cause": err.Error(),
		},
	)
}
