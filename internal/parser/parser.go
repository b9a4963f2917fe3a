package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hbdrevv/RinseList/internal/model"
)

// zipMagic zip 容器的文件头，打包电子表格（xlsx）以此开头
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// Parse 把原始字节和声明的文件名解析为结构化表格。
// 容器格式只看内容：zip 头按打包电子表格读取，其余一律按分隔文本处理；
// 文件名仅用于输出命名，不参与格式判断。
func Parse(data []byte, fileName string) (*model.Table, *ParseError) {
	if len(data) == 0 {
		return nil, newParseError(model.ErrorKindEmptyFile, "The file is empty.")
	}

	var (
		grid       [][]string
		multiSheet bool
		err        error
	)
	if bytes.HasPrefix(data, zipMagic) {
		grid, multiSheet, err = readWorkbook(data)
	} else {
		grid, err = readDelimited(data)
	}
	if err != nil {
		return nil, newParseError(model.ErrorKindParse, fmt.Sprintf("Unable to read the file: %v", err))
	}

	return buildTable(grid, multiSheet)
}

// buildTable 把单元格网格整理成表格记录并推断邮箱列。
// 第 0 行是表头；空白行整行跳过；缺失的尾部单元格补空串；
// 重名表头后列覆盖前列（已知限制，保持现状）。
func buildTable(grid [][]string, multiSheet bool) (*model.Table, *ParseError) {
	if len(grid) == 0 {
		return nil, newParseError(model.ErrorKindEmptyFile, "The file is empty.")
	}

	headers := make([]string, len(grid[0]))
	allEmpty := true
	for i, cell := range grid[0] {
		headers[i] = strings.TrimSpace(cell)
		if headers[i] != "" {
			allEmpty = false
		}
	}
	if allEmpty {
		return nil, newParseError(model.ErrorKindEmptyFile, "The file contains no column headers.")
	}

	if len(grid) == 1 {
		return nil, newParseError(model.ErrorKindEmptyFile, "The file contains headers but no data rows.")
	}

	emailIdx, emailName, ok := inferEmailColumn(headers)
	if !ok {
		return nil, newParseError(model.ErrorKindNoEmailColumn,
			`No email column could be found. Make sure one of the column headers contains the word "email".`)
	}

	rows := make([]model.Row, 0, len(grid)-1)
	for _, raw := range grid[1:] {
		if isBlankRow(raw) {
			continue
		}
		rec := make(model.Row, len(headers))
		for i, h := range headers {
			rec[h] = getCell(raw, i)
		}
		rows = append(rows, rec)
	}

	return &model.Table{
		Headers:           headers,
		Rows:              rows,
		EmailColumnIndex:  emailIdx,
		EmailColumnName:   emailName,
		HasMultipleSheets: multiSheet,
	}, nil
}

// isBlankRow 判断整行是否为空（每个单元格去空白后都为空）
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// getCell 取指定下标的单元格原文，越界返回空串
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
