package api

import (
	"context"
	"net/http"

	"BlueRec/model"
)

// RestaurantsByPredict 按个性化预测结果拉取推荐餐厅列表。
func (c *Client) RestaurantsByPredict(ctx context.Context, token string) (*Envelope[model.Recommendations], error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/getRestaurantsByPredict", nil, token, nil)
	if err != nil {
		return nil, err
	}
	return call[model.Recommendations](c, req, "RestaurantsByPredict")
}
