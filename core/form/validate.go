package form

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError 客户端侧表单校验失败，永远不会触发网络请求。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var validate = validator.New()

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// ValidateLogin 登录前的本地校验。
func ValidateLogin(email, password string) error {
	c := credentials{Email: email, Password: password}
	if err := validate.Struct(c); err != nil {
		return credentialError(err)
	}
	return nil
}

// ValidateRegistration 注册前的本地校验。confirm必须与密码一致；
// strongPolicy开启时额外要求8位以上且包含大小写字母和数字。
func ValidateRegistration(email, password, confirm, userName string, strongPolicy bool) error {
	if userName == "" {
		return &ValidationError{Field: "userName", Reason: "用户名不能为空"}
	}
	if err := ValidateLogin(email, password); err != nil {
		return err
	}
	if password != confirm {
		return &ValidationError{Field: "confirm", Reason: "两次输入的密码不一致"}
	}
	if strongPolicy {
		if err := checkPasswordPolicy(password); err != nil {
			return err
		}
	}
	return nil
}

func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return &ValidationError{Field: "password", Reason: "密码长度不能少于8位"}
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return &ValidationError{Field: "password", Reason: "密码必须包含大小写字母和数字"}
	}
	return nil
}

func credentialError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Field: "form", Reason: err.Error()}
	}
	fe := errs[0]
	switch fe.Field() {
	case "Email":
		return &ValidationError{Field: "email", Reason: "邮箱格式不正确"}
	case "Password":
		if fe.Tag() == "min" {
			return &ValidationError{Field: "password", Reason: "密码长度不能少于6位"}
		}
		return &ValidationError{Field: "password", Reason: "密码不能为空"}
	default:
		return &ValidationError{Field: fe.Field(), Reason: fe.Tag()}
	}
}

// parseNumeric 数字字段在表单里以字符串流转，这里统一做转换检查。
// 空串表示未改动，不算错误。
func parseNumeric(field, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "必须是数字"}
	}
	return n, nil
}
