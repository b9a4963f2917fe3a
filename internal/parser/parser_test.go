package parser

import (
	"strings"
	"testing"

	"github.com/hbdrevv/RinseList/internal/model"
)

func TestParse_CSVBasic(t *testing.T) {
	t.Parallel()

	data := []byte("Name,Email\nAlice,a@x.com\nBob,B@X.com\n")
	table, perr := Parse(data, "contacts.csv")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if len(table.Headers) != 2 || table.Headers[0] != "Name" || table.Headers[1] != "Email" {
		t.Fatalf("unexpected headers: %v", table.Headers)
	}
	if table.EmailColumnIndex != 1 || table.EmailColumnName != "Email" {
		t.Fatalf("email column want=1/Email got=%d/%s", table.EmailColumnIndex, table.EmailColumnName)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows want=2 got=%d", len(table.Rows))
	}
	if got := table.EmailAt(1); got != "B@X.com" {
		t.Fatalf("EmailAt(1) want=B@X.com got=%s", got)
	}
	if table.HasMultipleSheets {
		t.Fatalf("delimited text must never report multiple sheets")
	}
}

func TestParse_CSVStripsBOM(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Email\na@x.com\n")...)
	table, perr := Parse(data, "bom.csv")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if table.Headers[0] != "Email" {
		t.Fatalf("BOM not stripped, header=%q", table.Headers[0])
	}
}

func TestParse_CSVDelimiterSniffing(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"semicolon": "Name;Email\nAlice;a@x.com\n",
		"tab":       "Name\tEmail\nAlice\ta@x.com\n",
	}
	for name, raw := range cases {
		table, perr := Parse([]byte(raw), name+".csv")
		if perr != nil {
			t.Fatalf("%s: unexpected error: %v", name, perr)
		}
		if len(table.Headers) != 2 {
			t.Fatalf("%s: headers not split, got %v", name, table.Headers)
		}
		if got := table.EmailAt(0); got != "a@x.com" {
			t.Fatalf("%s: EmailAt(0) want=a@x.com got=%s", name, got)
		}
	}
}

func TestParse_CSVQuotedFields(t *testing.T) {
	t.Parallel()

	data := []byte("Name,Email\n\"Doe, Jane\",j@x.com\n\"He said \"\"hi\"\"\",h@x.com\n")
	table, perr := Parse(data, "quoted.csv")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if got := table.Rows[0].Get("Name"); got != "Doe, Jane" {
		t.Fatalf("quoted comma want=%q got=%q", "Doe, Jane", got)
	}
	if got := table.Rows[1].Get("Name"); got != `He said "hi"` {
		t.Fatalf("escaped quote want=%q got=%q", `He said "hi"`, got)
	}
}

func TestParse_SkipsBlankRows(t *testing.T) {
	t.Parallel()

	data := []byte("Name,Email\nAlice,a@x.com\n,\n   ,  \nBob,b@x.com\n")
	table, perr := Parse(data, "blank.csv")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("blank rows should be skipped, rows want=2 got=%d", len(table.Rows))
	}
}

func TestParse_ShortRowsCoerceEmpty(t *testing.T) {
	t.Parallel()

	data := []byte("Name,Email,Phone\nAlice,a@x.com\n")
	table, perr := Parse(data, "short.csv")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if got := table.Rows[0].Get("Phone"); got != "" {
		t.Fatalf("missing cell should coerce to empty, got=%q", got)
	}
}

func TestParse_DuplicateHeadersLastWins(t *testing.T) {
	t.Parallel()

	// 重名表头不去重：后列在行记录中覆盖前列
	data := []byte("Email,Email\nfirst@x.com,second@x.com\n")
	table, perr := Parse(data, "dup.csv")
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if len(table.Headers) != 2 {
		t.Fatalf("headers must keep both entries, got %v", table.Headers)
	}
	if got := table.Rows[0].Get("Email"); got != "second@x.com" {
		t.Fatalf("last column should win, want=second@x.com got=%s", got)
	}
}

func TestParse_EmailColumnInference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		header  string
		wantIdx int
	}{
		{"exact", "Name,Email", 1},
		{"hyphen", "Name,E-Mail", 1},
		{"address", "Name,Email Address", 1},
		{"hyphen_address", "Name,E-mail Address", 1},
		{"subscriber", "Name,Subscriber Email", 1},
		{"contact", "Name,Contact Email", 1},
		{"substring", "Name,Work Email (primary)", 1},
		{"canonical_beats_substring", "Emailed On,Email", 1},
	}
	for _, tc := range cases {
		parts := strings.Split(tc.header, ",")
		data := []byte(tc.header + "\n" + strings.Repeat("x,", len(parts)-1) + "x\n")
		table, perr := Parse(data, tc.name+".csv")
		if perr != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, perr)
		}
		if table.EmailColumnIndex != tc.wantIdx {
			t.Fatalf("%s: email column want=%d got=%d (%s)", tc.name, tc.wantIdx, table.EmailColumnIndex, table.EmailColumnName)
		}
	}
}

func TestParse_NoEmailColumn(t *testing.T) {
	t.Parallel()

	_, perr := Parse([]byte("Name,Phone\nAlice,123\n"), "x.csv")
	if perr == nil || perr.Kind != model.ErrorKindNoEmailColumn {
		t.Fatalf("want no_email_column got %+v", perr)
	}
}

func TestParse_HyphenatedSubstringNotMatched(t *testing.T) {
	t.Parallel()

	// 第二轮子串匹配不剥连字符：Primary E-Mail 两轮都不命中
	_, perr := Parse([]byte("Name,Primary E-Mail\nAlice,a@x.com\n"), "x.csv")
	if perr == nil || perr.Kind != model.ErrorKindNoEmailColumn {
		t.Fatalf("want no_email_column got %+v", perr)
	}
}

func TestParse_EmptyFileVariants(t *testing.T) {
	t.Parallel()

	cases := map[string][]byte{
		"zero_bytes":   {},
		"only_blank":   []byte("\n\n"),
		"no_headers":   []byte(",,\na,b,c\n"),
		"headers_only": []byte("Name,Email\n"),
	}
	for name, data := range cases {
		_, perr := Parse(data, name+".csv")
		if perr == nil || perr.Kind != model.ErrorKindEmptyFile {
			t.Fatalf("%s: want empty_file got %+v", name, perr)
		}
	}
}

func TestParse_CorruptWorkbook(t *testing.T) {
	t.Parallel()

	// zip 头 + 垃圾内容：按电子表格读取失败，归入 parse_error
	data := []byte("PK\x03\x04 this is not a real workbook")
	_, perr := Parse(data, "broken.xlsx")
	if perr == nil || perr.Kind != model.ErrorKindParse {
		t.Fatalf("want parse_error got %+v", perr)
	}
	if !strings.Contains(perr.Message, "Unable to read the file") {
		t.Fatalf("message should carry diagnostics, got %q", perr.Message)
	}
}
