package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/phyten/palettex/internal/analysis"
	"github.com/phyten/palettex/internal/termcolor"
	"github.com/phyten/palettex/internal/textutil"
)

func sampleReport(t *testing.T) analysis.Report {
	t.Helper()
	report, err := analysis.Analyze([]string{"#000000", "#FF0000", "#959595"}, "#FFFFFF")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return report
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleReport(t).Entries); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "HEX,LUMINANCE,CONTRAST,LEVEL,TEXT,DEUTERANOPIA,PROTANOPIA,TRITANOPIA,ACHROMATOPSIA" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "#000000,0.0000,21.00,AAA,#FFFFFF,#000000,#000000,#000000,#000000" {
		t.Fatalf("unexpected black row: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "#FF0000,0.2126,") || !strings.HasSuffix(lines[2], ",#959595") {
		t.Fatalf("unexpected red row: %s", lines[2])
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	report := sampleReport(t)
	if err := WriteNDJSON(&buf, report.Entries); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(report.Entries) {
		t.Fatalf("expected %d lines, got %d", len(report.Entries), len(lines))
	}
	for i, line := range lines {
		var entry analysis.Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("failed to decode line %d: %v", i, err)
		}
		if entry.Hex != report.Entries[i].Hex {
			t.Fatalf("line %d hex = %s", i, entry.Hex)
		}
	}
}

func TestWriteJSONReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "json", sampleReport(t), Options{}); err != nil {
		t.Fatalf("Write json failed: %v", err)
	}
	var decoded analysis.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Background != "#FFFFFF" || len(decoded.Entries) != 3 || len(decoded.Collisions) == 0 {
		t.Fatalf("unexpected report: %+v", decoded)
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, sampleReport(t)); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "| HEX | LUMINANCE |") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "| --- | --- |") {
		t.Fatal("missing separator row")
	}
	if !strings.Contains(out, "- achromatopsia: #FF0000 / #959595") {
		t.Fatalf("missing collision list: %q", out)
	}
	if got := escapeMarkdownCell("a|b\r\nc"); got != "a\\|b<br>c" {
		t.Fatalf("escapeMarkdownCell = %q", got)
	}
}

func TestWriteTablePlainAligns(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Title: "夕焼けの海 sunset palette", Width: 12}
	if err := WriteTable(&buf, sampleReport(t), opts); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatal("plain table must not contain escape codes")
	}
	lines := strings.Split(out, "\n")
	if textutil.VisibleWidth(lines[0]) > 12 || !strings.HasSuffix(lines[0], "…") {
		t.Fatalf("title not truncated: %q", lines[0])
	}
	hexCol := strings.Index(lines[1], "HEX")
	for _, line := range lines[2:5] {
		if strings.Index(line, "#") != hexCol {
			t.Fatalf("hex column misaligned:\n%s", out)
		}
	}
	if !strings.Contains(out, "hard to distinguish") {
		t.Fatalf("collisions missing:\n%s", out)
	}
}

func TestWriteTableColored(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleReport(t), Options{Color: true, Profile: termcolor.ProfileTrueColor}); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if !strings.Contains(buf.String(), "48;2;255;0;0m") {
		t.Fatalf("expected truecolor red swatch:\n%q", buf.String())
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml", analysis.Report{}, Options{}); err == nil {
		t.Fatal("expected error")
	}
}
