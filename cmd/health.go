package cmd

import (
	"fmt"
	"os"
	"strings"

	"BlueRec/core/api"
	"BlueRec/core/form"
	"BlueRec/core/session"
	"BlueRec/model"

	"github.com/spf13/cobra"
)

var (
	healthEdit  bool
	healthSets  []string
	healthWatch bool
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "健康数据仪表盘",
	Long:  `展示BMI、血糖、睡眠等健康数据。--edit配合--set修改；--watch在token变化时自动刷新。`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		// 拉取失败时停留在降级态，继续用默认值渲染
		state, _ := sess.Resolve(ctx)
		if state == session.StateAnonymous {
			os.Exit(1)
		}

		if healthEdit {
			f := form.SnapshotHealth(sess.User())
			if err := applySets(&f, healthSets); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			token, err := sess.Token()
			if err != nil {
				fmt.Println("请先登录")
				os.Exit(1)
			}
			updated, err := form.Submit(ctx, apiClient, token, f)
			if err != nil {
				fmt.Println(api.Message(err, "更新健康数据失败"))
				os.Exit(1)
			}
			fmt.Println("健康数据更新成功")
			renderDashboardFromUser(updated)
			return
		}

		renderDashboard(cmd)

		if healthWatch {
			fmt.Println("\n(监听token变化中, Ctrl+C退出)")
			// 另一个终端重新登录后仪表盘自动刷新
			_ = tokenStore.Watch(ctx, func(string) {
				if _, err := sess.Resolve(ctx); err == nil {
					renderDashboard(cmd)
				}
			})
		}
	},
}

// renderDashboard 优先使用预测接口的健康快照，失败时退回资料里的数值。
func renderDashboard(cmd *cobra.Command) {
	token, err := sess.Token()
	if err != nil {
		fmt.Println("请先登录")
		return
	}

	env, err := apiClient.PredictInfo(cmd.Context(), token)
	if err == nil {
		err = env.Err()
	}
	if err != nil || env.Data == nil {
		fmt.Println(api.Message(err, "获取预测信息失败"))
		renderDashboardFromUser(sess.User())
		return
	}
	renderPredict(*env.Data)
}

func renderDashboardFromUser(u model.User) {
	renderPredict(model.PredictInfo{
		HeightCM:               u.HeightCM,
		WeightKG:               u.WeightKG,
		BloodSugarMmolL:        u.BloodSugarMmolL,
		CookingSkills:          u.CookingSkills,
		DietaryPreferences:     u.DietaryPreferences,
		Diseases:               u.Diseases,
		EducationLevel:         u.EducationLevel,
		FitnessGoals:           u.FitnessGoals,
		FoodAllergies:          u.FoodAllergies,
		HeartRateBPM:           u.HeartRateBPM,
		SleepHoursLastNight:    u.SleepHoursLastNight,
		StepsTodayBeforeMeal:   u.StepsTodayBeforeMeal,
		WeatherHumidityPercent: u.WeatherHumidityPercent,
		WeatherTempCelsius:     u.WeatherTempCelsius,
	})
}

func renderPredict(p model.PredictInfo) {
	bmi := p.BMI()

	fmt.Println("========== 健康数据 ==========")
	fmt.Printf("BMI指数:  %.1f (%s)\n", bmi, model.BMICategory(bmi))
	fmt.Printf("          [%s] 18.5 - 24.9\n", progressBar(model.BMIProgressPercent(bmi)))
	fmt.Printf("身高:     %d cm\n", p.HeightCM)
	fmt.Printf("体重:     %d kg\n", p.WeightKG)
	fmt.Printf("血糖:     %.1f mmol/L\n", p.BloodSugarMmolL)
	fmt.Printf("饮食偏好: %s\n", p.DietaryPreferences)
	fmt.Printf("疾病:     %s\n", p.Diseases)
	fmt.Printf("学历水平: %s\n", p.EducationLevel)
	fmt.Printf("目标健康: %s\n", p.FitnessGoals)
	fmt.Printf("过敏食品: %s\n", p.FoodAllergies)
	fmt.Printf("心跳速率: %.0f bpm\n", p.HeartRateBPM)
	fmt.Printf("睡眠时长: %.1f 小时\n", p.SleepHoursLastNight)
	fmt.Printf("运动量:   %d 步\n", p.StepsTodayBeforeMeal)
	fmt.Printf("湿度:     %.0f%%\n", p.WeatherHumidityPercent)
	fmt.Printf("温度:     %.1f ℃\n", p.WeatherTempCelsius)
	fmt.Println("健康建议: " + model.BMIAdvice(bmi))
}

func progressBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func init() {
	rootCmd.AddCommand(healthCmd)

	healthCmd.Flags().BoolVar(&healthEdit, "edit", false, "编辑健康数据")
	healthCmd.Flags().StringArrayVar(&healthSets, "set", nil, "修改字段, 例如 --set height_cm=175 --set weight_kg=65")
	healthCmd.Flags().BoolVar(&healthWatch, "watch", false, "token变化时自动刷新")
}
