package parser

import "github.com/hbdrevv/RinseList/internal/model"

// ParseError 解析失败的结构化结果：Kind 标识错误类别，Message 面向用户展示。
// 解析阶段的所有失败都收敛为这一种类型，不向外抛异常。
type ParseError struct {
	Kind    model.ErrorKind `json:"kind"`
	Message string          `json:"message"`
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(kind model.ErrorKind, msg string) *ParseError {
	return &ParseError{Kind: kind, Message: msg}
}
