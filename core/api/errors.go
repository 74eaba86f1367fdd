package api

import (
	"errors"
	"fmt"
)

// NetworkError 传输层失败：超时、DNS、连接拒绝等。
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("网络请求失败: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError 服务端返回了非2xx状态码。
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string { return fmt.Sprintf("API返回错误状态码: %d", e.Status) }

// APIError 传输成功但业务码不是200。
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("API返回错误: %s (code: %d)", e.Message, e.Code) }

// DecodeError 响应体或data字段的形状与预期不符。
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("解析响应失败: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Message returns the server-provided message when the error carries one,
// otherwise the fallback. 给toast用。
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
