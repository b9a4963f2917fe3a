package model

// ErrorKind 错误分类
type ErrorKind string

const (
	ErrorKindEmptyFile     ErrorKind = "empty_file"
	ErrorKindNoEmailColumn ErrorKind = "no_email_column"
	ErrorKindParse         ErrorKind = "parse_error"
	ErrorKindSameFile      ErrorKind = "same_file"
	ErrorKindInternal      ErrorKind = "internal"
)

// RawFile 上传的原始文件：字节内容 + 申报的文件名
// 文件名只用于推断输出命名与错误提示，不参与容器格式判断
type RawFile struct {
	Name string
	Data []byte
}

// SuccessPayload 清洗成功载荷
type SuccessPayload struct {
	ArchiveBytes     []byte `json:"-"`
	CleanedListBytes []byte `json:"-"`
	AuditReportBytes []byte `json:"-"` // nil 表示未生成审计报告

	Stats                        Stats `json:"stats"`
	ContactHasMultipleSheets     bool  `json:"contactHasMultipleSheets"`
	SuppressionHasMultipleSheets bool  `json:"suppressionHasMultipleSheets"`
}

// FailurePayload 清洗失败载荷：单条面向用户的消息
type FailurePayload struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Outcome 一次清洗运行的最终结果
// Success 与 Failure 恰好一个非 nil
type Outcome struct {
	Success *SuccessPayload `json:"success,omitempty"`
	Failure *FailurePayload `json:"failure,omitempty"`
}

// Failed 是否失败
func (o *Outcome) Failed() bool {
	return o.Failure != nil
}
