package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	usernamePattern = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

	validatorOnce sync.Once
	validatorErr  error
)

// InitValidator 在gin的验证器上注册自定义规则，重复调用只注册一次
func InitValidator() error {
	validatorOnce.Do(func() {
		validatorErr = registerValidations()
	})
	return validatorErr
}

func registerValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin 验证引擎不是 validator/v10")
	}
	// 错误信息使用JSON字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("username", validateUsername)
}

// validateUsername 验证用户名
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	return usernamePattern.MatchString(username)
}

// BindJSON 严格解析请求体：拒绝未知字段，再执行 binding 规则
func BindJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil {
		return errors.New("request body is required")
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	if decoder.More() {
		return errors.New("invalid request body: trailing data")
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError 格式化验证错误
func formatValidationError(err error) error {
	var messages []string

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			param := e.Param()

			var message string
			switch e.Tag() {
			case "required":
				message = fmt.Sprintf("%s is required", field)
			case "min":
				message = fmt.Sprintf("%s must be at least %s", field, param)
			case "max":
				message = fmt.Sprintf("%s must be at most %s", field, param)
			case "username":
				message = fmt.Sprintf("%s may only contain letters, digits, '_', '.', '-' (3-50 characters)", field)
			default:
				message = fmt.Sprintf("%s failed %s validation", field, e.Tag())
			}

			messages = append(messages, message)
		}
	}

	if len(messages) > 0 {
		return errors.New(strings.Join(messages, "; "))
	}

	return err
}
