package form

import (
	"context"
	"errors"

	"BlueRec/core/api"
	"BlueRec/logger"
	"BlueRec/model"
)

// Client is the slice of the API client the submit flow needs.
type Client interface {
	Info(ctx context.Context, token string) (*api.Envelope[model.User], error)
	UpdateUser(ctx context.Context, token string, user model.User) (*api.Envelope[struct{}], error)
}

// Patcher 可提交的编辑表单：ProfileForm和HealthForm都实现它。
type Patcher interface {
	Validate() error
	Overlay(prev model.User) model.User
}

// Submit 提交一次编辑：
//  1. 本地校验，失败直接返回，不碰网络；
//  2. 重新拉取canonical资料，避免覆盖编辑期间服务端的并发修改；
//  3. 真值覆盖构造payload并上送；
//  4. 成功返回合并后的资料，失败时表单原样保留，调用方可直接重试。
func Submit(ctx context.Context, client Client, token string, f Patcher) (model.User, error) {
	if err := f.Validate(); err != nil {
		return model.User{}, err
	}

	env, err := client.Info(ctx, token)
	if err == nil {
		err = env.Err()
	}
	if err == nil && env.Data == nil {
		err = &api.DecodeError{Err: errors.New("响应缺少data字段")}
	}
	if err != nil {
		logger.Error("[Submit] 拉取最新资料失败", logger.ErrorField(err))
		return model.User{}, err
	}

	patch := f.Overlay(*env.Data)

	upd, err := client.UpdateUser(ctx, token, patch)
	if err == nil {
		err = upd.Err()
	}
	if err != nil {
		logger.Error("[Submit] 更新资料失败", logger.ErrorField(err))
		return model.User{}, err
	}

	logger.Info("[Submit] 资料更新成功", logger.String("userID", patch.UserID))
	return patch, nil
}
