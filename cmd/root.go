package cmd

import (
	"fmt"
	"os"

	"BlueRec/config"
	"BlueRec/core/api"
	"BlueRec/core/session"
	"BlueRec/logger"
	"BlueRec/storage"

	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	apiClient  *api.Client
	tokenStore *storage.TokenStore
	sess       *session.Manager
)

var rootCmd = &cobra.Command{
	Use:   "bluerec",
	Short: "BlueRec 蓝食个性化餐厅推荐客户端",
	Long:  `BlueRec 是蓝食推荐服务的命令行客户端，支持登录注册、个人资料和健康数据管理、个性化餐厅推荐、打卡训练与天气查询。`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initApp)
}

// initApp 进程启动时装配一次：配置、日志、API客户端和会话上下文，
// 之后显式传给各个子命令，不走包外的全局状态。
func initApp() {
	cfg = config.Load()
	logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	})
	apiClient = api.NewClient(cfg)
	tokenStore = storage.NewTokenStore(cfg.TokenPath)
	sess = session.NewManager(tokenStore, apiClient, cliNotifier{}, cfg.LoginRedirectDelay)
}

// cliNotifier 把toast和登录页跳转落到终端上。
type cliNotifier struct{}

func (cliNotifier) Toast(msg string) {
	fmt.Println(msg)
}

func (cliNotifier) RedirectToLogin() {
	fmt.Println(`请运行 "bluerec login" 登录`)
}
