package model

// Row 一行数据：列名 → 单元格文本（全部按文本处理）
type Row map[string]string

// Get 取某列的值，缺失时返回空字符串
func (r Row) Get(header string) string {
	if r == nil {
		return ""
	}
	return r[header]
}

// Table 解析后的表格
// Headers 保留源文件的列顺序；Rows 与源文件数据行一一对应（已跳过整行空白的行）
type Table struct {
	Headers           []string `json:"headers"`
	Rows              []Row    `json:"rows"`
	EmailColumnIndex  int      `json:"emailColumnIndex"`  // 邮箱列索引（基于 Headers）
	EmailColumnName   string   `json:"emailColumnName"`   // 邮箱列名（原始文本）
	HasMultipleSheets bool     `json:"hasMultipleSheets"` // 源文件包含多个 Sheet（仅读取第一个）
}

// EmailAt 返回第 i 行的邮箱单元格原文
func (t *Table) EmailAt(i int) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i].Get(t.EmailColumnName)
}
