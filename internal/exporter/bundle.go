package exporter

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// 压缩包内的固定条目名
const (
	ArchiveCleanedEntry = "cleaned_list.csv"
	ArchiveAuditEntry   = "removal_audit.csv"
)

// BuildArchive 把一到两个 CSV 产物打包成单个 zip。
// 清洗结果恒定包含；审计报告只在内容非空时加入第二个条目。
func BuildArchive(cleaned, audit []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entry, err := zw.Create(ArchiveCleanedEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive entry: %w", err)
	}
	if _, err := entry.Write(cleaned); err != nil {
		return nil, fmt.Errorf("failed to write cleaned list entry: %w", err)
	}

	if len(audit) > 0 {
		entry, err := zw.Create(ArchiveAuditEntry)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry: %w", err)
		}
		if _, err := entry.Write(audit); err != nil {
			return nil, fmt.Errorf("failed to write audit report entry: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
