package cmd

import (
	"fmt"
	"os"

	"BlueRec/core/api"

	"github.com/spf13/cobra"
)

var weatherLocation string

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "查询实况天气",
	Run: func(cmd *cobra.Command, args []string) {
		location := weatherLocation
		if location == "" {
			location = cfg.WeatherLocation
		}

		env, err := apiClient.Weather(cmd.Context(), location)
		if err == nil {
			err = env.Err()
		}
		if err != nil || env.Data == nil {
			fmt.Println(api.Message(err, "获取天气信息失败"))
			os.Exit(1)
		}

		now := env.Data.Now
		fmt.Println("========== 实况天气 ==========")
		fmt.Printf("天气:   %s\n", now.Text)
		fmt.Printf("温度:   %s℃ (体感%s℃)\n", now.Temp, now.FeelsLike)
		fmt.Printf("湿度:   %s%%\n", now.Humidity)
		fmt.Printf("风向:   %s %s级\n", now.WindDir, now.WindScale)
		if now.ObsTime != "" {
			fmt.Printf("观测于: %s\n", now.ObsTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)

	weatherCmd.Flags().StringVarP(&weatherLocation, "location", "l", "", "位置ID, 默认取WEATHER_LOCATION配置")
}
