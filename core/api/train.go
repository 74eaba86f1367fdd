package api

import (
	"context"
	"net/http"

	"BlueRec/model"
)

// Train 上送一条打卡样本触发模型训练。
// 训练本身在远端异步进行，这里只关心受理结果；
// 该接口会显式返回success标志，解码成功也可能是业务失败。
func (c *Client) Train(ctx context.Context, token string, review model.UserReview) (*Envelope[string], error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/train", nil, token, review)
	if err != nil {
		return nil, err
	}
	return call[string](c, req, "Train")
}
