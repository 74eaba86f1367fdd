package api

import (
	"context"
	"net/http"
	"net/url"

	"BlueRec/model"
)

// Weather 查询指定位置的实况天气，不需要登录。
func (c *Client) Weather(ctx context.Context, location string) (*Envelope[model.WeatherData], error) {
	query := url.Values{}
	query.Set("location", location)

	req, err := c.newRequest(ctx, http.MethodGet, "/getWeather", query, "", nil)
	if err != nil {
		return nil, err
	}
	return call[model.WeatherData](c, req, "Weather")
}
