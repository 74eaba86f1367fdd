package cmd

import (
	"errors"
	"fmt"
	"os"

	"BlueRec/core/api"
	"BlueRec/core/form"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "登录并保存accessToken",
	Run: func(cmd *cobra.Command, args []string) {
		if loginEmail == "" {
			fmt.Print("请输入邮箱: ")
			fmt.Scanln(&loginEmail)
		}
		if loginPassword == "" {
			fmt.Print("请输入密码: ")
			fmt.Scanln(&loginPassword)
		}

		// 校验不通过时不发起任何网络请求
		if err := form.ValidateLogin(loginEmail, loginPassword); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		env, err := apiClient.Login(cmd.Context(), api.LoginParams{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err == nil {
			err = env.Err()
		}
		if err == nil && (env.Data == nil || env.Data.Token == "") {
			err = errors.New("响应里没有token")
		}
		if err != nil {
			fmt.Println(api.Message(err, "登录失败"))
			os.Exit(1)
		}

		if err := sess.SetToken(env.Data.Token); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("登录成功")
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "登录邮箱")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "登录密码")
}
