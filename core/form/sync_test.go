package form

import (
	"context"
	"testing"

	"BlueRec/core/api"
	"BlueRec/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient 记录调用次数和上送的payload。
type fakeClient struct {
	canonical  model.User
	infoCalls  int
	infoErr    error
	updates    int
	updateErr  error
	lastUpdate model.User
}

func (f *fakeClient) Info(ctx context.Context, token string) (*api.Envelope[model.User], error) {
	f.infoCalls++
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	u := f.canonical
	return &api.Envelope[model.User]{Code: 200, Message: "成功", Data: &u}, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, token string, user model.User) (*api.Envelope[struct{}], error) {
	f.updates++
	f.lastUpdate = user
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &api.Envelope[struct{}]{Code: 200, Message: "成功"}, nil
}

func TestSubmitRefetchesCanonicalBeforePatching(t *testing.T) {
	client := &fakeClient{canonical: model.User{UserID: "7238487", Age: 30, Phone: "123"}}

	f := ProfileForm{Phone: "456"}
	merged, err := Submit(context.Background(), client, "tok", f)
	require.NoError(t, err)

	assert.Equal(t, 1, client.infoCalls)
	assert.Equal(t, 1, client.updates)
	// 上送的payload = 最新canonical + 真值覆盖
	assert.Equal(t, 30, client.lastUpdate.Age)
	assert.Equal(t, "456", client.lastUpdate.Phone)
	// 返回值就是合并后的资料
	assert.Equal(t, client.lastUpdate, merged)
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	client := &fakeClient{canonical: model.User{Age: 30}}

	f := ProfileForm{Age: "twenty"}
	_, err := Submit(context.Background(), client, "tok", f)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, client.infoCalls, "校验失败不应发起任何请求")
	assert.Zero(t, client.updates)
}

func TestSubmitPropagatesUpdateFailure(t *testing.T) {
	client := &fakeClient{
		canonical: model.User{Age: 30},
		updateErr: &api.HTTPError{Status: 500},
	}

	f := ProfileForm{Phone: "456"}
	_, err := Submit(context.Background(), client, "tok", f)
	var httpErr *api.HTTPError
	require.ErrorAs(t, err, &httpErr)
}

func TestSubmitPropagatesRefetchFailure(t *testing.T) {
	client := &fakeClient{infoErr: &api.NetworkError{}}

	f := ProfileForm{Phone: "456"}
	_, err := Submit(context.Background(), client, "tok", f)
	require.Error(t, err)
	assert.Zero(t, client.updates, "canonical拉取失败时不应上送更新")
}
