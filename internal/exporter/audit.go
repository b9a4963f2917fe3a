package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/hbdrevv/RinseList/internal/model"
)

// auditHeaders 审计报告的固定三列
var auditHeaders = []string{"Original Row", "Email", "Removal Reason"}

// BuildAuditReport 把移除行集合转成次级报告表。
// 行序与移除顺序一致（即联系人表原始顺序，suppressed 与 invalid 交错出现）；
// 原因用人类可读标签渲染，邮箱保留原始大小写。
func BuildAuditReport(removed []model.RemovedRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(auditHeaders); err != nil {
		return nil, fmt.Errorf("failed to write audit header: %w", err)
	}
	for _, r := range removed {
		rec := []string{strconv.Itoa(r.OriginalRow), r.Email, r.Reason.Label()}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("failed to write audit row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush audit csv: %w", err)
	}
	return buf.Bytes(), nil
}
