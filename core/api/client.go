package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"BlueRec/config"
	"BlueRec/logger"

	"github.com/google/uuid"
)

// Client Blue后端API客户端。只负责发请求和解析响应，
// 不持有token也不改任何视图状态。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建新的API客户端
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// SetBaseURL 设置API基础URL
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SetTimeout 设置请求超时时间
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// Envelope is the typed `{success, code, message, data}` wrapper every
// endpoint responds with. Data缺失时为nil，形状不符直接判DecodeError。
type Envelope[T any] struct {
	Success *bool
	Code    int
	Message string
	Data    *T
}

// Err returns an *APIError when the envelope carries a business failure
// (code != 200, or an explicit success=false). 由调用方决定什么时候检查。
func (e *Envelope[T]) Err() error {
	if e.Code != 200 {
		return &APIError{Code: e.Code, Message: e.Message}
	}
	if e.Success != nil && !*e.Success {
		return &APIError{Code: e.Code, Message: e.Message}
	}
	return nil
}

// rawEnvelope data先留成RawMessage，由每个接口再做类型化解码。
type rawEnvelope struct {
	Success *bool           `json:"success,omitempty"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// newRequest 组装一次请求：JSON正文、统一的Bearer头和请求ID。
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, token string, body interface{}) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		// 统一使用 Authorization: Bearer，服务端兼容带前缀的token
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// call 发送请求并把响应解析成类型化的Envelope。
// 不做任何重试，每次调用恰好一次网络往返。
func call[T any](c *Client, req *http.Request, tag string) (*Envelope[T], error) {
	requestID := req.Header.Get("X-Request-ID")
	logger.Debug("["+tag+"] 发送请求",
		logger.String("method", req.Method),
		logger.String("url", req.URL.String()),
		logger.String("requestId", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("["+tag+"] 请求失败", logger.ErrorField(err), logger.String("requestId", requestID))
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("["+tag+"] 服务器返回错误状态码",
			logger.Int("status", resp.StatusCode),
			logger.String("requestId", requestID))
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("["+tag+"] 读取响应失败", logger.ErrorField(err), logger.String("requestId", requestID))
		return nil, &NetworkError{Err: err}
	}

	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		logger.Error("["+tag+"] 解析响应失败", logger.ErrorField(err), logger.String("requestId", requestID))
		return nil, &DecodeError{Err: err}
	}

	env := &Envelope[T]{Success: raw.Success, Code: raw.Code, Message: raw.Message}
	if len(raw.Data) > 0 && string(raw.Data) != "null" {
		var data T
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			logger.Error("["+tag+"] 解析data失败", logger.ErrorField(err), logger.String("requestId", requestID))
			return nil, &DecodeError{Err: err}
		}
		env.Data = &data
	}

	logger.Info("["+tag+"] 请求完成",
		logger.Int("code", env.Code),
		logger.String("requestId", requestID))
	return env, nil
}
