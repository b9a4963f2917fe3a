package model

// RemovalReason 行被移除的原因
type RemovalReason string

const (
	ReasonSuppressed RemovalReason = "suppressed"
	ReasonInvalid    RemovalReason = "invalid"
)

// Label 审计报告里展示的标签
func (r RemovalReason) Label() string {
	switch r {
	case ReasonSuppressed:
		return "Suppressed"
	case ReasonInvalid:
		return "Invalid Format"
	default:
		return string(r)
	}
}

// RemovedRow 被移除的行
type RemovedRow struct {
	OriginalRow int           `json:"originalRow"` // 源文件行号：表头占第 1 行，首条数据行为 2
	Email       string        `json:"email"`       // 邮箱单元格原文（保留原始大小写）
	Reason      RemovalReason `json:"reason"`
	RowData     Row           `json:"rowData"`
}

// Stats 清洗统计
// 恒等式：TotalRows == CleanedCount + SuppressedCount + InvalidCount
type Stats struct {
	TotalRows       int `json:"totalRows"`
	CleanedCount    int `json:"cleanedCount"`
	SuppressedCount int `json:"suppressedCount"`
	InvalidCount    int `json:"invalidCount"`
}

// CleanOptions 清洗选项
type CleanOptions struct {
	GenerateAuditReport bool `json:"generateAuditReport"` // 生成移除审计报告
	RemoveInvalidEmails bool `json:"removeInvalidEmails"` // 同时移除格式非法的邮箱
}

// MatchResult 匹配结果：保留行与移除行各自维持原始行序
type MatchResult struct {
	CleanedRows []Row        `json:"cleanedRows"`
	RemovedRows []RemovedRow `json:"removedRows"`
	Stats       Stats        `json:"stats"`
}
