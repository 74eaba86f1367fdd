package model

import "math"

// PredictInfo is the health snapshot returned by the prediction endpoint.
// 注意：线上小程序端曾用 blood_sugar/cooking_skill 等别名读取这份数据，
// 与服务端实际字段不一致，导致页面常年显示默认值；这里按服务端真实
// 字段建模。
type PredictInfo struct {
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`

	HeightCM       int    `json:"height_cm,omitempty"`
	WeightKG       int    `json:"weight_kg,omitempty"`
	Hometown       string `json:"hometown,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	MaritalStatus  string `json:"marital_status,omitempty"`

	Diseases           string `json:"diseases,omitempty"`
	DietaryPreferences string `json:"dietary_preferences,omitempty"`
	ActivityLevel      string `json:"activity_level,omitempty"`
	FitnessGoals       string `json:"fitness_goals,omitempty"`
	FoodAllergies      string `json:"food_allergies,omitempty"`
	CookingSkills      string `json:"cooking_skills,omitempty"`

	HeartRateBPM           float64 `json:"heart_rate_bpm,omitempty"`
	BloodSugarMmolL        float64 `json:"blood_sugar_mmol_L,omitempty"`
	SleepHoursLastNight    float64 `json:"sleep_hours_last_night,omitempty"`
	StepsTodayBeforeMeal   int     `json:"steps_today_before_meal,omitempty"`
	WeatherTempCelsius     float64 `json:"weather_temp_celsius,omitempty"`
	WeatherHumidityPercent float64 `json:"weather_humidity_percent,omitempty"`
}

// BMI returns the body mass index rounded to one decimal,
// or 0 when height/weight are missing.
func (p PredictInfo) BMI() float64 {
	if p.HeightCM <= 0 || p.WeightKG <= 0 {
		return 0
	}
	h := float64(p.HeightCM) / 100
	return math.Round(float64(p.WeightKG)/(h*h)*10) / 10
}

// BMICategory 按照仪表盘的分段返回体重状态描述。
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "体重过轻"
	case bmi < 24:
		return "健康体重"
	case bmi < 28:
		return "体重超重"
	default:
		return "体重肥胖"
	}
}

// BMIAdvice 返回对应分段的健康建议文案。
func BMIAdvice(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "您的体重过轻，建议增加营养摄入并进行适量运动。"
	case bmi < 24:
		return "您的BMI指数处于健康范围，建议保持当前的饮食和运动习惯。"
	case bmi < 28:
		return "您的体重超重，建议控制饮食并增加运动量。"
	default:
		return "您的体重肥胖，建议尽快咨询医生并制定减重计划。"
	}
}

// BMIProgressPercent maps the BMI onto the dashboard progress band.
func BMIProgressPercent(bmi float64) int {
	switch {
	case bmi < 18.5:
		return 10
	case bmi < 24:
		return 50
	case bmi < 28:
		return 75
	default:
		return 90
	}
}
