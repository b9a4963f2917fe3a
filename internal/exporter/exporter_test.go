package exporter

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"

	"github.com/hbdrevv/RinseList/internal/model"
)

func TestMarshalTable(t *testing.T) {
	t.Parallel()

	headers := []string{"Name", "Email", "Phone"}
	rows := []model.Row{
		{"Name": "Alice", "Email": "a@x.com", "Phone": "123"},
		{"Name": "Bob", "Email": "b@x.com"}, // Phone 缺失，补空串
	}

	out, err := MarshalTable(headers, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Name,Email,Phone\nAlice,a@x.com,123\nBob,b@x.com,\n"
	if string(out) != want {
		t.Fatalf("csv want=%q got=%q", want, string(out))
	}
}

func TestMarshalTable_EscapingRoundTrip(t *testing.T) {
	t.Parallel()

	headers := []string{"Name", "Email"}
	rows := []model.Row{
		{"Name": "Doe, Jane", "Email": "j@x.com"},
		{"Name": `He said "hi"`, "Email": "h@x.com"},
		{"Name": "Multi\nLine", "Email": "m@x.com"},
	}

	out, err := MarshalTable(headers, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(out))
	grid, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if len(grid) != 4 {
		t.Fatalf("reparsed rows want=4 got=%d", len(grid))
	}
	for i, row := range rows {
		got := model.Row{"Name": grid[i+1][0], "Email": grid[i+1][1]}
		if !reflect.DeepEqual(got, row) {
			t.Fatalf("row %d corrupted: want=%+v got=%+v", i, row, got)
		}
	}
}

func TestBuildAuditReport(t *testing.T) {
	t.Parallel()

	removed := []model.RemovedRow{
		{OriginalRow: 2, Email: "a@x.com", Reason: model.ReasonSuppressed},
		{OriginalRow: 4, Email: "bad", Reason: model.ReasonInvalid},
	}

	out, err := BuildAuditReport(removed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Original Row,Email,Removal Reason\n2,a@x.com,Suppressed\n4,bad,Invalid Format\n"
	if string(out) != want {
		t.Fatalf("audit want=%q got=%q", want, string(out))
	}
}

func TestBuildArchive(t *testing.T) {
	t.Parallel()

	cleaned := []byte("Email\na@x.com\n")
	audit := []byte("Original Row,Email,Removal Reason\n2,b@x.com,Suppressed\n")

	data, err := BuildArchive(cleaned, audit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readArchive(t, data)
	if len(entries) != 2 {
		t.Fatalf("entries want=2 got=%d", len(entries))
	}
	if got := entries[ArchiveCleanedEntry]; got != string(cleaned) {
		t.Fatalf("cleaned entry want=%q got=%q", cleaned, got)
	}
	if got := entries[ArchiveAuditEntry]; got != string(audit) {
		t.Fatalf("audit entry want=%q got=%q", audit, got)
	}
}

func TestBuildArchive_OmitsEmptyAudit(t *testing.T) {
	t.Parallel()

	data, err := BuildArchive([]byte("Email\na@x.com\n"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readArchive(t, data)
	if len(entries) != 1 {
		t.Fatalf("entries want=1 got=%d", len(entries))
	}
	if _, ok := entries[ArchiveAuditEntry]; ok {
		t.Fatalf("empty audit must not produce an entry")
	}
}

func TestWithBOM(t *testing.T) {
	t.Parallel()

	out := WithBOM([]byte("Email\n"))
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("missing BOM prefix: %v", out[:3])
	}
	if !strings.HasSuffix(string(out), "Email\n") {
		t.Fatalf("payload corrupted: %q", out)
	}
}

// readArchive 解包 zip 字节，返回条目名到内容的映射
func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		rc.Close()
		entries[f.Name] = buf.String()
	}
	return entries
}
