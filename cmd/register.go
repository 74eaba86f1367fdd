package cmd

import (
	"fmt"
	"os"

	"BlueRec/core/api"
	"BlueRec/core/form"

	"github.com/spf13/cobra"
)

var (
	registerEmail    string
	registerPassword string
	registerConfirm  string
	registerUserName string
	strongPassword   bool
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "注册新账号",
	Run: func(cmd *cobra.Command, args []string) {
		if registerEmail == "" {
			fmt.Print("请输入邮箱: ")
			fmt.Scanln(&registerEmail)
		}
		if registerUserName == "" {
			fmt.Print("请输入用户名: ")
			fmt.Scanln(&registerUserName)
		}
		if registerPassword == "" {
			fmt.Print("请输入密码: ")
			fmt.Scanln(&registerPassword)
		}
		if registerConfirm == "" {
			fmt.Print("请再次输入密码: ")
			fmt.Scanln(&registerConfirm)
		}

		if err := form.ValidateRegistration(registerEmail, registerPassword, registerConfirm, registerUserName, strongPassword); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		env, err := apiClient.Register(cmd.Context(), api.RegisterParams{
			Email:    registerEmail,
			Password: registerPassword,
			UserName: registerUserName,
		})
		if err == nil {
			err = env.Err()
		}
		if err != nil {
			fmt.Println(api.Message(err, "注册失败"))
			os.Exit(1)
		}
		fmt.Println(`注册成功，运行 "bluerec login" 登录`)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "注册邮箱")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "密码")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm", "", "确认密码")
	registerCmd.Flags().StringVarP(&registerUserName, "username", "u", "", "用户名")
	registerCmd.Flags().BoolVar(&strongPassword, "strong-password", false, "启用强密码策略(8位以上含大小写字母和数字)")
}
