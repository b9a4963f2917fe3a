package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hbdrevv/RinseList/internal/model"
)

// sheetFixture 测试用工作表数据
type sheetFixture struct {
	name string
	rows [][]interface{}
}

// buildWorkbook 在内存中构造 xlsx 字节，避免测试依赖磁盘文件
func buildWorkbook(t *testing.T, sheets []sheetFixture) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("failed to create sheet: %v", err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("failed to build cell name: %v", err)
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				t.Fatalf("failed to set row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParse_XLSXSingleSheet(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, []sheetFixture{
		{name: "Contacts", rows: [][]interface{}{
			{"Name", "Email"},
			{"Alice", "a@x.com"},
			{"Bob", "B@X.com"},
		}},
	})

	table, perr := Parse(data, "contacts.xlsx")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if table.EmailColumnIndex != 1 || table.EmailColumnName != "Email" {
		t.Fatalf("email column want=1/Email got=%d/%s", table.EmailColumnIndex, table.EmailColumnName)
	}
	if len(table.Rows) != 2 || table.EmailAt(1) != "B@X.com" {
		t.Fatalf("unexpected rows: %+v", table.Rows)
	}
	if table.HasMultipleSheets {
		t.Fatalf("single-sheet workbook should not set the multi-sheet flag")
	}
}

func TestParse_XLSXMultiSheetReadsFirstOnly(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, []sheetFixture{
		{name: "First", rows: [][]interface{}{
			{"Email"},
			{"first@x.com"},
		}},
		{name: "Second", rows: [][]interface{}{
			{"Email"},
			{"second@x.com"},
		}},
	})

	table, perr := Parse(data, "multi.xlsx")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if !table.HasMultipleSheets {
		t.Fatalf("multi-sheet flag should be set")
	}
	if len(table.Rows) != 1 || table.EmailAt(0) != "first@x.com" {
		t.Fatalf("only the first sheet should be read, rows=%+v", table.Rows)
	}
}

func TestParse_XLSXNumericCellsCoerceToText(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, []sheetFixture{
		{name: "Sheet1", rows: [][]interface{}{
			{"ID", "Email"},
			{42, "a@x.com"},
		}},
	})

	table, perr := Parse(data, "numeric.xlsx")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if got := table.Rows[0].Get("ID"); got != "42" {
		t.Fatalf("numeric cell want=42 got=%q", got)
	}
}

func TestParse_XLSXHeadersOnly(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, []sheetFixture{
		{name: "Sheet1", rows: [][]interface{}{
			{"Name", "Email"},
		}},
	})

	_, perr := Parse(data, "empty.xlsx")
	if perr == nil || perr.Kind != model.ErrorKindEmptyFile {
		t.Fatalf("want empty_file got %+v", perr)
	}
}
