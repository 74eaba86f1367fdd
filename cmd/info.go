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
	infoEdit bool
	infoSets []string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "查看或编辑个人资料",
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := sess.Resolve(cmd.Context())
		if state == session.StateAnonymous {
			os.Exit(1)
		}
		// 拉取失败时继续用默认值渲染，与页面的降级行为一致
		user := sess.User()
		if !infoEdit {
			renderProfile(user)
			return
		}

		f := form.SnapshotProfile(user)
		if err := applySets(&f, infoSets); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		token, err := sess.Token()
		if err != nil {
			fmt.Println("请先登录")
			os.Exit(1)
		}
		updated, err := form.Submit(cmd.Context(), apiClient, token, f)
		if err != nil {
			fmt.Println(api.Message(err, "更新用户信息失败"))
			os.Exit(1)
		}
		fmt.Println("更新成功")
		renderProfile(updated.WithDefaults())
	},
}

// applySets 把 --set field=value 逐条落到表单上，一次只动一个字段。
func applySets(f interface {
	Set(field, value string) error
}, pairs []string) error {
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("无效的--set参数: %q, 应为 字段=值", pair)
		}
		if err := f.Set(field, value); err != nil {
			return err
		}
	}
	return nil
}

func renderProfile(u model.User) {
	fmt.Println("========== 个人主页 ==========")
	fmt.Printf("头像:     %s\n", u.AvatarURL)
	fmt.Printf("昵称:     %s\n", u.UserName)
	fmt.Printf("ID:       %s\n", u.UserID)
	fmt.Printf("个性签名: %s\n", model.DefaultSign)
	fmt.Printf("年龄:     %d岁\n", u.Age)
	fmt.Printf("性别:     %s\n", u.Gender)
	fmt.Printf("所在地:   %s\n", u.Hometown)
	fmt.Printf("职业:     %s\n", u.Occupation)
	fmt.Printf("手机号:   %s\n", u.Phone)
	fmt.Printf("邮箱:     %s\n", u.Email)
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoEdit, "edit", false, "编辑资料")
	infoCmd.Flags().StringArrayVar(&infoSets, "set", nil, "修改字段, 例如 --set name=GHOST --set age=25 (可用: avatar,name,sign,age,gender,location,career,phone,email)")
}
