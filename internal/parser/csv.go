package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// utf8BOM 分隔文本开头可能携带的 UTF-8 BOM
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readDelimited 将分隔文本解码为单元格网格。
// 先剥离 BOM，再从首行推断分隔符；宽松引号、不限定每行字段数。
func readDelimited(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delimited text: %w", err)
	}
	return grid, nil
}

// sniffDelimiter 从首行推断分隔符：逗号、分号、制表符中取出现次数最多者，平局或全无时取逗号
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	best := byte(',')
	bestCount := -1
	for _, d := range []byte{',', ';', '\t'} {
		if n := bytes.Count(line, []byte{d}); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return rune(best)
}
