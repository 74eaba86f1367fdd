package model

import "time"

// UserReview 餐厅打卡时上送给训练接口的完整样本，
// 一条记录拼上了用户画像、健康快照、天气和本次消费情况。
type UserReview struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`

	HeightCM       float64 `json:"height_cm"`
	WeightKG       float64 `json:"weight_kg"`
	Hometown       string  `json:"hometown"`
	Occupation     string  `json:"occupation"`
	EducationLevel string  `json:"education_level"`
	MaritalStatus  string  `json:"marital_status"`
	HasChildren    bool    `json:"has_children"`
	Hobbies        string  `json:"hobbies"`

	Diseases           string `json:"diseases"`
	DietaryPreferences string `json:"dietary_preferences"`
	ActivityLevel      string `json:"activity_level"`
	FitnessGoals       string `json:"fitness_goals"`
	FoodAllergies      string `json:"food_allergies"`
	CookingSkills      string `json:"cooking_skills"`

	DailyFoodBudgetCNY float64 `json:"daily_food_budget_cny"`
	ReviewDatetime     string  `json:"review_datetime"`

	HeartRateBPM         int     `json:"heart_rate_bpm"`
	BloodSugarMmolL      float64 `json:"blood_sugar_mmol_l"`
	BloodPressureMmHg    string  `json:"blood_pressure_mm_hg"`
	SleepHoursLastNight  float64 `json:"sleep_hours_last_night"`
	WeatherTempCelsius   float64 `json:"weather_temp_celsius"`
	WeatherHumidity      float64 `json:"weather_humidity_percent"`
	StepsTodayBeforeMeal int     `json:"steps_today_before_meal"`
	WasHungryBeforeMeal  bool    `json:"was_hungry_before_meal"`

	UserID                string  `json:"user_id"`
	RestaurantID          string  `json:"restaurant_id"`
	RestaurantName        string  `json:"restaurant_name"`
	UserRating            float64 `json:"user_rating"`
	ReviewTextPlaceholder string  `json:"review_text_placeholder"`
}

// NewUserReview assembles a training sample from the current profile,
// the weather snapshot and the restaurant being checked in.
func NewUserReview(u User, r Restaurant, rating float64, hungry bool, tempC, humidity float64) UserReview {
	return UserReview{
		ID:                   u.UserID,
		Name:                 u.UserName,
		Age:                  u.Age,
		Gender:               u.Gender,
		HeightCM:             float64(u.HeightCM),
		WeightKG:             float64(u.WeightKG),
		Hometown:             u.Hometown,
		Occupation:           u.Occupation,
		EducationLevel:       u.EducationLevel,
		MaritalStatus:        u.MaritalStatus,
		HasChildren:          u.HasChildren == "有",
		Hobbies:              u.Hobbies,
		Diseases:             u.Diseases,
		DietaryPreferences:   u.DietaryPreferences,
		ActivityLevel:        u.ActivityLevel,
		FitnessGoals:         u.FitnessGoals,
		FoodAllergies:        u.FoodAllergies,
		CookingSkills:        u.CookingSkills,
		DailyFoodBudgetCNY:   float64(u.DailyFoodBudgetCNY),
		ReviewDatetime:       time.Now().Format("2006-01-02 15:04:05"),
		HeartRateBPM:         int(u.HeartRateBPM),
		BloodSugarMmolL:      u.BloodSugarMmolL,
		SleepHoursLastNight:  u.SleepHoursLastNight,
		WeatherTempCelsius:   tempC,
		WeatherHumidity:      humidity,
		StepsTodayBeforeMeal: u.StepsTodayBeforeMeal,
		WasHungryBeforeMeal:  hungry,
		UserID:               u.UserID,
		RestaurantID:         r.RestaurantID,
		RestaurantName:       r.Name,
		UserRating:           rating,
	}
}
