package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"BlueRec/logger"

	"github.com/fsnotify/fsnotify"
)

// ErrTokenNotFound token从未写入过或已被清空。
var ErrTokenNotFound = errors.New("access token not found")

// TokenStore 设备本地的accessToken存储，整个客户端只有这一份持久化状态。
// 客户端自身从不删除token，失效与否由服务端判定。
type TokenStore struct {
	path string
}

// NewTokenStore creates a store backed by the file at path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Get reads the persisted token. Returns ErrTokenNotFound when the file is
// absent or empty.
func (s *TokenStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("读取token文件失败: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// Set persists the token, overwriting any previous value.
// 先写临时文件再rename，避免并发读到半截内容。
func (s *TokenStore) Set(token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("创建token目录失败: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".accessToken-*")
	if err != nil {
		return fmt.Errorf("创建临时token文件失败: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("写入token失败: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("设置token文件权限失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("关闭临时token文件失败: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("替换token文件失败: %w", err)
	}
	return nil
}

// Watch blocks until ctx is done, invoking onChange with the new token each
// time another process rewrites the token file (比如另一个终端里重新登录)。
func (s *TokenStore) Watch(ctx context.Context, onChange func(token string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建文件监听失败: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("创建token目录失败: %w", err)
	}
	// 监听目录而不是文件本身：rename替换会让文件级watch失效
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("添加监听目录失败: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			token, err := s.Get()
			if err != nil {
				logger.Warn("[TokenWatch] token文件变化但读取失败", logger.ErrorField(err))
				continue
			}
			logger.Info("[TokenWatch] 检测到token更新")
			onChange(token)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("[TokenWatch] 监听出错", logger.ErrorField(err))
		}
	}
}
