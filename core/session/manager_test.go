package session

import (
	"context"
	"testing"
	"time"

	"BlueRec/core/api"
	"BlueRec/model"
	"BlueRec/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	token string
}

func (s *fakeStore) Get() (string, error) {
	if s.token == "" {
		return "", storage.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *fakeStore) Set(token string) error {
	s.token = token
	return nil
}

type fakeProfileClient struct {
	calls int
	user  *model.User
	err   error
	code  int
}

func (c *fakeProfileClient) Info(ctx context.Context, token string) (*api.Envelope[model.User], error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	code := c.code
	if code == 0 {
		code = 200
	}
	return &api.Envelope[model.User]{Code: code, Message: "成功", Data: c.user}, nil
}

type fakeNotifier struct {
	toasts    []string
	redirects int
}

func (n *fakeNotifier) Toast(msg string) { n.toasts = append(n.toasts, msg) }
func (n *fakeNotifier) RedirectToLogin() { n.redirects++ }

func TestResolveWithoutTokenRedirectsWithoutFetching(t *testing.T) {
	client := &fakeProfileClient{}
	notifier := &fakeNotifier{}
	m := NewManager(&fakeStore{}, client, notifier, 5*time.Millisecond)

	state, err := m.Resolve(context.Background())

	assert.Equal(t, StateAnonymous, state)
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, []string{"请先登录"}, notifier.toasts)
	assert.Equal(t, 1, notifier.redirects)
	assert.Zero(t, client.calls, "未登录分支不应发起资料请求")
}

func TestResolveCancelledContextSuppressesRedirect(t *testing.T) {
	notifier := &fakeNotifier{}
	m := NewManager(&fakeStore{}, &fakeProfileClient{}, notifier, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	state, _ := m.Resolve(ctx)

	assert.Equal(t, StateAnonymous, state)
	assert.Zero(t, notifier.redirects)
}

func TestResolveAppliesDefaultsForAbsentFields(t *testing.T) {
	client := &fakeProfileClient{user: &model.User{
		UserID:   "7238487",
		UserName: "GHOST",
		Gender:   "未知",
		Phone:    "0",
	}}
	notifier := &fakeNotifier{}
	m := NewManager(&fakeStore{token: "tok-123"}, client, notifier, time.Millisecond)

	state, err := m.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state)

	u := m.User()
	assert.Equal(t, "GHOST", u.UserName)
	assert.Equal(t, model.DefaultGender, u.Gender, "未知性别换成默认值")
	assert.Equal(t, model.DefaultNotFilled, u.Phone, "0号码显示为未填写")
	assert.Equal(t, model.DefaultAvatarURL, u.AvatarURL)
	assert.Equal(t, model.DefaultHometown, u.Hometown)
	assert.Equal(t, model.DefaultOccupation, u.Occupation)
}

func TestResolveFetchFailureDegradesWithoutRedirect(t *testing.T) {
	client := &fakeProfileClient{err: &api.HTTPError{Status: 401}}
	notifier := &fakeNotifier{}
	m := NewManager(&fakeStore{token: "tok-stale"}, client, notifier, time.Millisecond)

	state, err := m.Resolve(context.Background())

	require.Error(t, err)
	// 与未登录分支不同：提示但不跳转，停留在降级态
	assert.Equal(t, StateResolving, state)
	assert.Equal(t, []string{"获取用户信息失败"}, notifier.toasts)
	assert.Zero(t, notifier.redirects)
	// 本地字段保持默认值，渲染不会崩
	assert.Equal(t, model.DefaultNotFilled, m.User().UserName)
}

func TestResolveBusinessFailureDegrades(t *testing.T) {
	client := &fakeProfileClient{user: nil, code: 201}
	notifier := &fakeNotifier{}
	m := NewManager(&fakeStore{token: "tok"}, client, notifier, time.Millisecond)

	state, err := m.Resolve(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateResolving, state)
}

func TestResolveNoAutomaticRetry(t *testing.T) {
	client := &fakeProfileClient{err: &api.NetworkError{}}
	m := NewManager(&fakeStore{token: "tok"}, client, &fakeNotifier{}, time.Millisecond)

	m.Resolve(context.Background())
	assert.Equal(t, 1, client.calls, "失败后不自动重试，重试只能来自新的Resolve")

	m.Resolve(context.Background())
	assert.Equal(t, 2, client.calls)
}

func TestExpiredTokenIsNotLoggedIn(t *testing.T) {
	// exp在过去的JWT（不验签，只看claims）
	expired := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJleHAiOjE1Nzc4MzY4MDB9." + // 2020-01-01
		"x"
	m := NewManager(&fakeStore{token: expired}, &fakeProfileClient{}, &fakeNotifier{}, time.Millisecond)

	_, err := m.Token()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSetTokenPersists(t *testing.T) {
	store := &fakeStore{}
	m := NewManager(store, &fakeProfileClient{}, &fakeNotifier{}, time.Millisecond)

	require.NoError(t, m.SetToken("fresh-token"))
	assert.Equal(t, "fresh-token", store.token)
}
