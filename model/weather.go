package model

// WeatherNow 和风天气 v7 实况字段，数值在协议里是字符串。
type WeatherNow struct {
	ObsTime   string `json:"obsTime,omitempty"`
	Temp      string `json:"temp,omitempty"`
	FeelsLike string `json:"feelsLike,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Text      string `json:"text,omitempty"`
	WindDir   string `json:"windDir,omitempty"`
	WindScale string `json:"windScale,omitempty"`
	Humidity  string `json:"humidity,omitempty"`
	Precip    string `json:"precip,omitempty"`
	Vis       string `json:"vis,omitempty"`
}

// WeatherData is the data payload of the weather endpoint.
type WeatherData struct {
	Code       string     `json:"code,omitempty"`
	UpdateTime string     `json:"updateTime,omitempty"`
	Now        WeatherNow `json:"now"`
}
