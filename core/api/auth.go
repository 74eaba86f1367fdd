package api

import (
	"context"
	"net/http"
)

// LoginParams 登录请求体
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterParams 注册请求体
type RegisterParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

// LoginData is the data payload of a successful login.
type LoginData struct {
	Token string `json:"token"`
}

// Login 用户登录，成功时data里带token。
func (c *Client) Login(ctx context.Context, params LoginParams) (*Envelope[LoginData], error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/login", nil, "", params)
	if err != nil {
		return nil, err
	}
	return call[LoginData](c, req, "Login")
}

// Register 用户注册。
func (c *Client) Register(ctx context.Context, params RegisterParams) (*Envelope[struct{}], error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/register", nil, "", params)
	if err != nil {
		return nil, err
	}
	return call[struct{}](c, req, "Register")
}
