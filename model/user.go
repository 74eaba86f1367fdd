package model

// 用户资料的展示默认值，服务端缺省字段一律落到这里，
// 渲染层永远不会拿到未定义字段。
const (
	DefaultAvatarURL  = "https://s21.ax1x.com/2025/05/29/pVpDCpn.png"
	DefaultUserID     = "未登录"
	DefaultNotFilled  = "未填写"
	DefaultGender     = "男"
	DefaultHometown   = "上海市"
	DefaultOccupation = "产品设计师"
	DefaultSign       = "热爱生活，享受当下"
)

// User is the canonical server-owned profile record.
// 字段名与服务端保持一致，未填写的字段在JSON里可能整体缺失。
type User struct {
	UserID    string `json:"userID,omitempty"`
	UserName  string `json:"userName,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Age       int    `json:"age,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"` // 未知, 男, 女

	HeightCM       int    `json:"height_cm,omitempty"`
	WeightKG       int    `json:"weight_kg,omitempty"`
	Hometown       string `json:"hometown,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	MaritalStatus  string `json:"marital_status,omitempty"` // 未知, 未婚, 已婚
	HasChildren    string `json:"has_children,omitempty"`   // 未知, 无, 有
	Hobbies        string `json:"hobbies,omitempty"`

	Diseases           string `json:"diseases,omitempty"`
	DietaryPreferences string `json:"dietary_preferences,omitempty"`
	ActivityLevel      string `json:"activity_level,omitempty"` // 0:未知, 1:几乎不运动, 2:每周1-2次, 3:每周3-5次
	FitnessGoals       string `json:"fitness_goals,omitempty"`  // 例如: 减脂, 增肌, 提高耐力等
	FoodAllergies      string `json:"food_allergies,omitempty"` // 忌口: 花生, 海鲜等
	CookingSkills      string `json:"cooking_skills,omitempty"` // 0:未知, 1:不会, 2:一般, 3:熟练

	DailyFoodBudgetCNY   int     `json:"daily_food_budget_cny,omitempty"`
	HeartRateBPM         float64 `json:"heart_rate_bpm,omitempty"`
	BloodSugarMmolL      float64 `json:"blood_sugar_mmol_L,omitempty"`
	SleepHoursLastNight  float64 `json:"sleep_hours_last_night,omitempty"`
	StepsTodayBeforeMeal int     `json:"steps_today_before_meal,omitempty"`

	WeatherTempCelsius     float64 `json:"weather_temp_celsius,omitempty"`
	WeatherHumidityPercent float64 `json:"weather_humidity_percent,omitempty"`
}

// WithDefaults returns a copy with every absent optional field replaced by
// its documented display default. 服务端把"未知"性别和"0"手机号当作未填写。
func (u User) WithDefaults() User {
	if u.AvatarURL == "" {
		u.AvatarURL = DefaultAvatarURL
	}
	if u.UserName == "" {
		u.UserName = DefaultNotFilled
	}
	if u.UserID == "" {
		u.UserID = DefaultUserID
	}
	if u.Gender == "" || u.Gender == "未知" {
		u.Gender = DefaultGender
	}
	if u.Hometown == "" {
		u.Hometown = DefaultHometown
	}
	if u.Occupation == "" {
		u.Occupation = DefaultOccupation
	}
	if u.Phone == "" || u.Phone == "0" {
		u.Phone = DefaultNotFilled
	}
	if u.Email == "" {
		u.Email = DefaultNotFilled
	}
	if u.ActivityLevel == "" {
		u.ActivityLevel = "0"
	}
	if u.CookingSkills == "" {
		u.CookingSkills = "0"
	}
	if u.MaritalStatus == "" {
		u.MaritalStatus = "未知"
	}
	if u.HasChildren == "" {
		u.HasChildren = "未知"
	}
	return u
}
