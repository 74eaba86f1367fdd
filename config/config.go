package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores the client configuration.
// 服务端地址等部署相关的值全部来自环境变量，不在代码里写死。
type Config struct {
	APIBaseURL string // Blue后端服务地址，例如 http://127.0.0.1:9090

	HTTPTimeout time.Duration // 单次请求超时

	TokenPath string // accessToken 在本地的存储路径

	// LoginRedirectDelay is how long the "please log in" notice is shown
	// before jumping to the login surface.
	LoginRedirectDelay time.Duration

	WeatherLocation string // 默认天气查询位置

	LogPath  string
	LogLevel string
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() 不会覆盖已存在的环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env, relying on existing environment variables and defaults.")
	}

	tokenPath := getEnv("TOKEN_PATH", "")
	if tokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		tokenPath = filepath.Join(home, ".bluerec", "accessToken")
	}

	return &Config{
		APIBaseURL:         getEnv("BLUE_API_URL", "http://127.0.0.1:9090"),
		HTTPTimeout:        time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		TokenPath:          tokenPath,
		LoginRedirectDelay: time.Duration(getEnvInt("LOGIN_REDIRECT_DELAY_MS", 2000)) * time.Millisecond,
		WeatherLocation:    getEnv("WEATHER_LOCATION", "101021500"), // 默认上海普陀
		LogPath:            getEnv("LOG_PATH", filepath.Join("logs", "bluerec.log")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}
