package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook 读取打包的电子表格容器。
// 无论包含多少个工作表，只读第一个；是否存在多表通过第二个返回值上报。
func readWorkbook(data []byte) ([][]string, bool, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, false, nil
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, false, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return grid, len(sheets) > 1, nil
}
