package matcher

import (
	"github.com/hbdrevv/RinseList/internal/email"
	"github.com/hbdrevv/RinseList/internal/model"
)

// Match 用抑制表清洗联系人表：逐行按原始顺序分类。
// 命中抑制集合的行记为 suppressed；开启 RemoveInvalidEmails 时格式非法的行记为
// invalid；其余行原样保留。抑制判断永远优先于格式判断——既命中又非法的行只报
// suppressed。比较只做规范化后的精确匹配，不做模糊或部分匹配。
func Match(contact, suppression *model.Table, opts model.CleanOptions) *model.MatchResult {
	suppressed := buildSuppressionSet(suppression)

	res := &model.MatchResult{
		CleanedRows: make([]model.Row, 0, len(contact.Rows)),
		RemovedRows: make([]model.RemovedRow, 0),
	}
	res.Stats.TotalRows = len(contact.Rows)

	for i, row := range contact.Rows {
		raw := row.Get(contact.EmailColumnName)
		// 源文件行号：表头占第 1 行，首条数据行为 2
		rowNum := i + 2

		if _, hit := suppressed[email.Normalize(raw)]; hit {
			res.RemovedRows = append(res.RemovedRows, model.RemovedRow{
				OriginalRow: rowNum,
				Email:       raw,
				Reason:      model.ReasonSuppressed,
				RowData:     row,
			})
			res.Stats.SuppressedCount++
			continue
		}

		if opts.RemoveInvalidEmails && !email.IsValid(raw) {
			res.RemovedRows = append(res.RemovedRows, model.RemovedRow{
				OriginalRow: rowNum,
				Email:       raw,
				Reason:      model.ReasonInvalid,
				RowData:     row,
			})
			res.Stats.InvalidCount++
			continue
		}

		res.CleanedRows = append(res.CleanedRows, row)
		res.Stats.CleanedCount++
	}

	return res
}

// buildSuppressionSet 收集抑制表邮箱列的规范化集合。
// 空单元格跳过，重复项自然合并；抑制表的其他列从不读取。
func buildSuppressionSet(t *model.Table) map[string]struct{} {
	set := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		e := email.Normalize(row.Get(t.EmailColumnName))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return set
}
