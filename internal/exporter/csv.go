package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/hbdrevv/RinseList/internal/model"
)

// utf8BOM 下载产物开头的 UTF-8 BOM，Excel 打开 CSV 时据此识别编码
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MarshalTable 把表头与行记录序列化为 RFC 4180 风格的 CSV 字节。
// 先输出表头行，再按表头顺序逐行输出；行记录里缺失的键补空串。
// 含逗号、双引号或换行的字段由 encoding/csv 负责加引号与转义。
func MarshalTable(headers []string, rows []model.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			record[i] = row.Get(h)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WithBOM 在字节前附加 UTF-8 BOM（仅用于对外下载的产物）
func WithBOM(b []byte) []byte {
	out := make([]byte, 0, len(utf8BOM)+len(b))
	out = append(out, utf8BOM...)
	return append(out, b...)
}
