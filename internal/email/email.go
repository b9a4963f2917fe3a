package email

import (
	"regexp"
	"strings"
)

// 宽松的语法筛查：恰好一个 @，@ 前后不含空白或 @，域名部分至少有一个点
// 只做廉价的格式过滤，不做完整的 RFC 校验
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValid 判断字符串是否是一个语法上说得通的邮箱地址
// 空串或纯空白直接判否；判定前先去除首尾空白
func IsValid(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailRe.MatchString(s)
}

// Normalize 归一化邮箱用于相等性比较：去除首尾空白并转小写
// 仅用于压制名单的成员判定，输出展示始终保留原文
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
