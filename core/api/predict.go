package api

import (
	"context"
	"net/http"

	"BlueRec/model"
)

// PredictInfo 获取模型侧的健康预测快照。
func (c *Client) PredictInfo(ctx context.Context, token string) (*Envelope[model.PredictInfo], error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/predictInfo", nil, token, nil)
	if err != nil {
		return nil, err
	}
	return call[model.PredictInfo](c, req, "PredictInfo")
}
