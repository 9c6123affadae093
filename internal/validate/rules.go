// Package validate 按 schema 做字段级校验：一次收集全部违规，
// 不在第一个错误处停下，并顺手做清洗（trim、邮箱转小写）。
package validate

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

func requiredText(field, val string) []string {
	if val == "" {
		return []string{field + " is required"}
	}
	return nil
}

func textBetween(field, val string, min, max int) []string {
	var out []string
	n := utf8.RuneCountInString(val)
	if n < min {
		out = append(out, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	if n > max {
		out = append(out, fmt.Sprintf("%s cannot exceed %d characters", field, max))
	}
	return out
}

func textMax(field, val string, max int) []string {
	if utf8.RuneCountInString(val) > max {
		return []string{fmt.Sprintf("%s cannot exceed %d characters", field, max)}
	}
	return nil
}

func emailSyntax(val string) []string {
	if err := v.Var(val, "email"); err != nil {
		return []string{"email must be a valid email address"}
	}
	return nil
}

// passwordClasses 至少一个小写、一个大写、一个数字
func passwordClasses(val string) []string {
	var lower, upper, digit bool
	for _, r := range val {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if lower && upper && digit {
		return nil
	}
	return []string{"password must contain at least one lowercase letter, one uppercase letter and one digit"}
}

func yearRange(val int) []string {
	maxYear := time.Now().Year()
	if val < 0 || val > maxYear {
		return []string{fmt.Sprintf("year must be between 0 and %d", maxYear)}
	}
	return nil
}
