package model

import "strings"

// Restaurant 推荐接口返回的餐厅条目，字段来自高德POI数据。
type Restaurant struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Adcode       string `json:"adcode,omitempty"`
	Adname       string `json:"adname,omitempty"`
	BizType      string `json:"biz_type,omitempty"`
	BusinessArea string `json:"business_area,omitempty"`
	Cityname     string `json:"cityname,omitempty"`
	Pname        string `json:"pname,omitempty"`

	Cost          float64 `json:"cost,omitempty"`
	Cuisine       string  `json:"cuisine,omitempty"`
	EntrLocation  string  `json:"entr_location,omitempty"`
	Location      string  `json:"location,omitempty"`
	MealOrdering  int     `json:"meal_ordering,omitempty"`
	PhotoURLFirst string  `json:"photo_url_first,omitempty"`
	RatingBiz     float64 `json:"rating_biz,omitempty"`

	RecommendationScore float64 `json:"recommendation_score,omitempty"`
	Tag                 string  `json:"tag,omitempty"`
	Tel                 string  `json:"tel,omitempty"`
	Type                string  `json:"type,omitempty"`
}

// Types 按分号拆分经营类型，例如 "餐饮服务;中餐厅;特色/地方风味餐厅"。
func (r Restaurant) Types() []string {
	if r.Type == "" {
		return nil
	}
	return strings.Split(r.Type, ";")
}

// Tags 按逗号拆分推荐标签。
func (r Restaurant) Tags() []string {
	if r.Tag == "" {
		return nil
	}
	return strings.Split(r.Tag, ",")
}

// Recommendations is the data payload of the recommendation endpoint.
type Recommendations struct {
	Recommendations []Restaurant `json:"recommendations"`
}

// CardInfo 餐厅卡片的展示模型。
type CardInfo struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating"`
	PricePerPerson float64  `json:"pricePerPerson"`
	Distance       string   `json:"distance,omitempty"`
	Reasons        []string `json:"reasons"`
}

// CardFromRestaurant 把推荐结果转成卡片；人均缺省时沿用页面上的100元兜底。
func CardFromRestaurant(id int, r Restaurant) CardInfo {
	price := r.Cost
	if price == 0 {
		price = 100
	}
	reasons := r.Tags()
	if len(reasons) == 0 {
		reasons = r.Types()
	}
	return CardInfo{
		ID:             id,
		Name:           r.Name,
		Image:          r.PhotoURLFirst,
		Rating:         r.RatingBiz,
		PricePerPerson: price,
		Distance:       r.Address,
		Reasons:        reasons,
	}
}

// SeedCards 推荐接口不可用时的本地兜底卡片。
func SeedCards() []CardInfo {
	return []CardInfo{
		{ID: 1, Name: "苏小柳点心专门店", Image: DefaultAvatarURL, Rating: 4.6, PricePerPerson: 98, Distance: "近铁城市广场", Reasons: []string{"小笼包皮薄馅足", "适合清淡饮食"}},
		{ID: 2, Name: "山葵家精致料理", Image: DefaultAvatarURL, Rating: 4.4, PricePerPerson: 128, Distance: "月星环球港", Reasons: []string{"低脂轻食", "高蛋白"}},
		{ID: 3, Name: "绿茶餐厅", Image: DefaultAvatarURL, Rating: 4.2, PricePerPerson: 76, Distance: "中山公园龙之梦", Reasons: []string{"人均实惠", "菜品均衡"}},
	}
}
