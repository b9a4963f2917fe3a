package parser

import "strings"

// canonicalEmailHeaders 首轮精确匹配的规范列名。
// 比较前先小写并去掉连字符，因此同时覆盖 email / e-mail / email address /
// e-mail address / subscriber email / contact email 六种写法。
var canonicalEmailHeaders = map[string]bool{
	"email":            true,
	"email address":    true,
	"subscriber email": true,
	"contact email":    true,
}

// inferEmailColumn 推断邮箱列，先到先得：
// 第一轮在规范列名中精确匹配；第二轮退回到小写列名包含 email 子串的列。
// 只看列名、不看单元格内容——一列全是邮箱但列名不沾边的情况不会被选中。
func inferEmailColumn(headers []string) (int, string, bool) {
	for i, h := range headers {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), "-", "")
		if canonicalEmailHeaders[key] {
			return i, h, true
		}
	}
	for i, h := range headers {
		if strings.Contains(strings.ToLower(h), "email") {
			return i, h, true
		}
	}
	return -1, "", false
}
