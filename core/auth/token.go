package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpired reports whether the stored JWT is already past its exp claim.
// 客户端没有签名密钥，这里只做不验签的预检，省掉一次注定401的请求；
// token不是合法JWT或没有exp时一律交给服务端判定。
func IsExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
