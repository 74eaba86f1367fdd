package cmd

import (
	"fmt"
	"os"
	"strings"

	"BlueRec/core/api"
	"BlueRec/core/session"
	"BlueRec/model"

	"github.com/spf13/cobra"
)

var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "个性化餐厅推荐",
	Long:  `按当前用户的健康画像拉取推荐餐厅，选择编号查看详情。推荐服务不可用时展示本地兜底卡片。`,
	Run: func(cmd *cobra.Command, args []string) {
		state, _ := sess.Resolve(cmd.Context())
		if state == session.StateAnonymous {
			os.Exit(1)
		}

		restaurants, cards := fetchRecommendations(cmd)

		fmt.Printf("为你推荐 %d 家餐厅:\n\n", len(cards))
		for _, card := range cards {
			fmt.Printf("%d. %s  评分%.1f  人均%.0f元\n", card.ID, card.Name, card.Rating, card.PricePerPerson)
			if card.Distance != "" {
				fmt.Printf("   %s\n", card.Distance)
			}
			if len(card.Reasons) > 0 {
				fmt.Printf("   推荐理由: %s\n", strings.Join(card.Reasons, " / "))
			}
		}

		if len(restaurants) == 0 {
			return
		}

		var choice int
		fmt.Print("\n请选择要查看详情的餐厅编号(0退出): ")
		fmt.Scan(&choice)
		if choice < 1 || choice > len(restaurants) {
			return
		}
		renderRestaurantDetail(restaurants[choice-1])
	},
}

// fetchRecommendations 拉取推荐列表；失败或为空时退回本地种子卡片。
func fetchRecommendations(cmd *cobra.Command) ([]model.Restaurant, []model.CardInfo) {
	token, err := sess.Token()
	if err != nil {
		return nil, model.SeedCards()
	}

	env, err := apiClient.RestaurantsByPredict(cmd.Context(), token)
	if err == nil {
		err = env.Err()
	}
	if err != nil || env.Data == nil || len(env.Data.Recommendations) == 0 {
		if err != nil {
			fmt.Println(api.Message(err, "获取推荐失败"))
		}
		return nil, model.SeedCards()
	}

	restaurants := env.Data.Recommendations
	cards := make([]model.CardInfo, len(restaurants))
	for i, r := range restaurants {
		cards[i] = model.CardFromRestaurant(i+1, r)
	}
	return restaurants, cards
}

func renderRestaurantDetail(r model.Restaurant) {
	fmt.Println("\n========== 餐厅详情 ==========")
	fmt.Printf("名称:   %s\n", r.Name)
	fmt.Printf("评分:   %.1f\n", r.RatingBiz)
	cost := r.Cost
	if cost == 0 {
		cost = 100
	}
	fmt.Printf("人均:   %.0f元\n", cost)
	if len(r.Types()) > 0 {
		fmt.Printf("类型:   %s\n", strings.Join(r.Types(), " / "))
	}
	fmt.Printf("地址:   %s\n", r.Address)
	if r.Tel != "" {
		fmt.Printf("电话:   %s\n", r.Tel)
	}
	if len(r.Tags()) > 0 {
		fmt.Printf("标签:   %s\n", strings.Join(r.Tags(), ", "))
	}
	if r.PhotoURLFirst != "" {
		fmt.Printf("图片:   %s\n", r.PhotoURLFirst)
	}
	if r.RecommendationScore > 0 {
		fmt.Printf("推荐度: %.2f\n", r.RecommendationScore)
	}
}

func init() {
	rootCmd.AddCommand(restaurantsCmd)
}
