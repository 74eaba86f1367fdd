package api

import (
	"context"
	"net/http"

	"BlueRec/model"
)

// Info 获取当前用户的完整资料。
func (c *Client) Info(ctx context.Context, token string) (*Envelope[model.User], error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/info", nil, token, nil)
	if err != nil {
		return nil, err
	}
	return call[model.User](c, req, "Info")
}

// UpdateUser 上送覆盖后的完整资料记录。
// 服务端按整条记录替换，增量合并在客户端完成。
func (c *Client) UpdateUser(ctx context.Context, token string, user model.User) (*Envelope[struct{}], error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/updateUser", nil, token, user)
	if err != nil {
		return nil, err
	}
	return call[struct{}](c, req, "UpdateUser")
}
