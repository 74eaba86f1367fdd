package form

import (
	"strconv"

	"BlueRec/model"
)

// ProfileForm 个人主页编辑弹窗的本地镜像，所有字段按字符串流转，
// 打开编辑面板时从当前资料快照一次，之后只随Set变化。
type ProfileForm struct {
	Avatar   string
	Name     string
	Sign     string // 个性签名只在本地展示，不上送
	Age      string
	Gender   string
	Location string
	Career   string
	Phone    string
	Email    string
}

// SnapshotProfile initializes the form from the rendered profile.
func SnapshotProfile(u model.User) ProfileForm {
	return ProfileForm{
		Avatar:   u.AvatarURL,
		Name:     u.UserName,
		Sign:     model.DefaultSign,
		Age:      strconv.Itoa(u.Age),
		Gender:   u.Gender,
		Location: u.Hometown,
		Career:   u.Occupation,
		Phone:    u.Phone,
		Email:    u.Email,
	}
}

// Set updates exactly one field. 未知字段直接报校验错误。
func (f *ProfileForm) Set(field, value string) error {
	switch field {
	case "avatar":
		f.Avatar = value
	case "name":
		f.Name = value
	case "sign":
		f.Sign = value
	case "age":
		f.Age = value
	case "gender":
		f.Gender = value
	case "location":
		f.Location = value
	case "career":
		f.Career = value
	case "phone":
		f.Phone = value
	case "email":
		f.Email = value
	default:
		return &ValidationError{Field: field, Reason: "未知字段"}
	}
	return nil
}

// Validate 提交前的本地检查，失败时不发起任何网络请求。
func (f ProfileForm) Validate() error {
	if _, err := parseNumeric("age", f.Age); err != nil {
		return err
	}
	return nil
}

// Overlay builds the update payload: the freshly fetched canonical record
// with every truthy edited field laid on top. 空串和0视作"未改动"，
// 保留服务端原值——这是有意的非破坏性增量更新策略，不是缺陷。
func (f ProfileForm) Overlay(prev model.User) model.User {
	out := prev
	if f.Avatar != "" {
		out.AvatarURL = f.Avatar
	}
	if f.Name != "" {
		out.UserName = f.Name
	}
	if n, err := parseNumeric("age", f.Age); err == nil && n != 0 {
		out.Age = int(n)
	}
	if f.Gender != "" {
		out.Gender = f.Gender
	}
	if f.Location != "" {
		out.Hometown = f.Location
	}
	if f.Career != "" {
		out.Occupation = f.Career
	}
	if f.Phone != "" {
		out.Phone = f.Phone
	}
	if f.Email != "" {
		out.Email = f.Email
	}
	return out
}

// HealthForm 健康数据编辑面板的本地镜像。
type HealthForm struct {
	HeightCM             string
	WeightKG             string
	BloodSugar           string
	CookingSkill         string
	DietaryPreference    string
	Disease              string
	EducationLevel       string
	FitnessGoal          string
	FoodAllergy          string
	HeartRateBPM         string
	SleepHoursLastNight  string
	StepsTodayBeforeMeal string
	WeatherHumidity      string
	WeatherTemp          string
}

// SnapshotHealth initializes the form from the current profile.
func SnapshotHealth(u model.User) HealthForm {
	return HealthForm{
		HeightCM:             strconv.Itoa(u.HeightCM),
		WeightKG:             strconv.Itoa(u.WeightKG),
		BloodSugar:           formatFloat(u.BloodSugarMmolL),
		CookingSkill:         u.CookingSkills,
		DietaryPreference:    u.DietaryPreferences,
		Disease:              u.Diseases,
		EducationLevel:       u.EducationLevel,
		FitnessGoal:          u.FitnessGoals,
		FoodAllergy:          u.FoodAllergies,
		HeartRateBPM:         formatFloat(u.HeartRateBPM),
		SleepHoursLastNight:  formatFloat(u.SleepHoursLastNight),
		StepsTodayBeforeMeal: strconv.Itoa(u.StepsTodayBeforeMeal),
		WeatherHumidity:      formatFloat(u.WeatherHumidityPercent),
		WeatherTemp:          formatFloat(u.WeatherTempCelsius),
	}
}

// Set updates exactly one field by its wire name.
func (f *HealthForm) Set(field, value string) error {
	switch field {
	case "height_cm":
		f.HeightCM = value
	case "weight_kg":
		f.WeightKG = value
	case "blood_sugar":
		f.BloodSugar = value
	case "cooking_skill":
		f.CookingSkill = value
	case "dietary_preference":
		f.DietaryPreference = value
	case "disease":
		f.Disease = value
	case "education_level":
		f.EducationLevel = value
	case "fitness_goal":
		f.FitnessGoal = value
	case "foodAllergy":
		f.FoodAllergy = value
	case "heart_rate_bpm":
		f.HeartRateBPM = value
	case "sleep_hours_last_night":
		f.SleepHoursLastNight = value
	case "steps_today_before_meal":
		f.StepsTodayBeforeMeal = value
	case "weather_humidity_percent":
		f.WeatherHumidity = value
	case "weather_temp_celsius":
		f.WeatherTemp = value
	default:
		return &ValidationError{Field: field, Reason: "未知字段"}
	}
	return nil
}

// Validate 检查所有数字字段可以转换，失败时阻断提交。
func (f HealthForm) Validate() error {
	numeric := []struct{ field, value string }{
		{"height_cm", f.HeightCM},
		{"weight_kg", f.WeightKG},
		{"blood_sugar", f.BloodSugar},
		{"heart_rate_bpm", f.HeartRateBPM},
		{"sleep_hours_last_night", f.SleepHoursLastNight},
		{"steps_today_before_meal", f.StepsTodayBeforeMeal},
		{"weather_humidity_percent", f.WeatherHumidity},
		{"weather_temp_celsius", f.WeatherTemp},
	}
	for _, n := range numeric {
		if _, err := parseNumeric(n.field, n.value); err != nil {
			return err
		}
	}
	return nil
}

// Overlay lays the truthy edited fields over the canonical record,
// same non-destructive policy as ProfileForm.Overlay.
func (f HealthForm) Overlay(prev model.User) model.User {
	out := prev
	if n, err := parseNumeric("height_cm", f.HeightCM); err == nil && n != 0 {
		out.HeightCM = int(n)
	}
	if n, err := parseNumeric("weight_kg", f.WeightKG); err == nil && n != 0 {
		out.WeightKG = int(n)
	}
	if n, err := parseNumeric("blood_sugar", f.BloodSugar); err == nil && n != 0 {
		out.BloodSugarMmolL = n
	}
	if f.CookingSkill != "" && f.CookingSkill != "0" {
		out.CookingSkills = f.CookingSkill
	}
	if f.DietaryPreference != "" {
		out.DietaryPreferences = f.DietaryPreference
	}
	if f.Disease != "" {
		out.Diseases = f.Disease
	}
	if f.EducationLevel != "" {
		out.EducationLevel = f.EducationLevel
	}
	if f.FitnessGoal != "" {
		out.FitnessGoals = f.FitnessGoal
	}
	if f.FoodAllergy != "" {
		out.FoodAllergies = f.FoodAllergy
	}
	if n, err := parseNumeric("heart_rate_bpm", f.HeartRateBPM); err == nil && n != 0 {
		out.HeartRateBPM = n
	}
	if n, err := parseNumeric("sleep_hours_last_night", f.SleepHoursLastNight); err == nil && n != 0 {
		out.SleepHoursLastNight = n
	}
	if n, err := parseNumeric("steps_today_before_meal", f.StepsTodayBeforeMeal); err == nil && n != 0 {
		out.StepsTodayBeforeMeal = int(n)
	}
	if n, err := parseNumeric("weather_humidity_percent", f.WeatherHumidity); err == nil && n != 0 {
		out.WeatherHumidityPercent = n
	}
	if n, err := parseNumeric("weather_temp_celsius", f.WeatherTemp); err == nil && n != 0 {
		out.WeatherTempCelsius = n
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
