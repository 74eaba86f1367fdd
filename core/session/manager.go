package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"BlueRec/core/api"
	"BlueRec/core/auth"
	"BlueRec/logger"
	"BlueRec/model"
	"BlueRec/storage"
)

// State 会话状态机：Anonymous -> Resolving -> {Authenticated, Anonymous}。
// 资料拉取失败时停留在Resolving的降级态，本地字段保持默认值。
type State int

const (
	StateAnonymous State = iota
	StateResolving
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// ErrNotLoggedIn token缺失或已过期。
var ErrNotLoggedIn = errors.New("未登录")

// TokenStore is the persisted token holder.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
}

// ProfileClient is the slice of the API client the controller needs.
type ProfileClient interface {
	Info(ctx context.Context, token string) (*api.Envelope[model.User], error)
}

// Notifier surfaces transient notices and the login redirect to the view layer.
type Notifier interface {
	Toast(msg string)
	RedirectToLogin()
}

// Manager 把"是否已登录"的判断、登录页跳转和资料合并集中到一处，
// 进程启动时创建一次，显式传给需要的命令，不做任何包级共享。
type Manager struct {
	store         TokenStore
	client        ProfileClient
	notifier      Notifier
	redirectDelay time.Duration

	mu    sync.Mutex
	state State
	user  model.User
}

// NewManager wires the controller. redirectDelay is how long the
// "please log in" notice stays up before the redirect fires.
func NewManager(store TokenStore, client ProfileClient, notifier Notifier, redirectDelay time.Duration) *Manager {
	return &Manager{
		store:         store,
		client:        client,
		notifier:      notifier,
		redirectDelay: redirectDelay,
		state:         StateAnonymous,
		user:          model.User{}.WithDefaults(),
	}
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the last known profile, defaults included.
func (m *Manager) User() model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Token 取当前可用的token。缺失或exp已过均视作未登录。
func (m *Manager) Token() (string, error) {
	token, err := m.store.Get()
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return "", ErrNotLoggedIn
		}
		return "", err
	}
	if auth.IsExpired(token) {
		logger.Warn("[Session] token已过期")
		return "", ErrNotLoggedIn
	}
	return token, nil
}

// SetToken persists a freshly issued token. 登录成功时唯一的写入口。
func (m *Manager) SetToken(token string) error {
	if err := m.store.Set(token); err != nil {
		return fmt.Errorf("保存token失败: %w", err)
	}
	return nil
}

// Resolve drives one pass of the state machine, the client-side equivalent
// of a page mount:
//   - 无token：提示请先登录，停留redirectDelay后跳转登录页，不发资料请求；
//   - 有token：拉取/info，成功则套默认值进入Authenticated；
//   - 拉取失败：提示一次，停留在Resolving降级态，由用户重新进入页面重试。
func (m *Manager) Resolve(ctx context.Context) (State, error) {
	token, err := m.Token()
	if err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			m.setState(StateAnonymous)
			m.notifier.Toast("请先登录")
			select {
			case <-time.After(m.redirectDelay):
				m.notifier.RedirectToLogin()
			case <-ctx.Done():
			}
			return StateAnonymous, ErrNotLoggedIn
		}
		return m.State(), err
	}

	m.setState(StateResolving)

	env, err := m.client.Info(ctx, token)
	if err == nil {
		err = env.Err()
	}
	if err == nil && env.Data == nil {
		err = &api.DecodeError{Err: errors.New("响应缺少data字段")}
	}
	if err != nil {
		logger.Error("[Session] 获取用户信息失败", logger.ErrorField(err))
		if ctx.Err() == nil {
			// 注意：这条分支不跳转登录页，与未登录分支区分开
			m.notifier.Toast("获取用户信息失败")
		}
		return m.State(), err
	}

	// 视图已经被放弃时不再应用迟到的结果
	if ctx.Err() != nil {
		return m.State(), ctx.Err()
	}

	m.mu.Lock()
	m.user = env.Data.WithDefaults()
	m.state = StateAuthenticated
	m.mu.Unlock()

	logger.Info("[Session] 登录态已确认", logger.String("userID", env.Data.UserID))
	return StateAuthenticated, nil
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
