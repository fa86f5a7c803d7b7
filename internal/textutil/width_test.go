package textutil

import "testing"

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日落", 4},
		{"\x1b[1;31mred\x1b[0m", 3},
		{"é", 1},
	}
	for _, tc := range cases {
		if got := VisibleWidth(tc.in); got != tc.want {
			t.Fatalf("VisibleWidth(%q)=%d want %d", tc.in, got, tc.want)
		}
	}
}

func TestTruncateByWidth(t *testing.T) {
	cases := []struct {
		in       string
		w        int
		ellipsis string
		want     string
	}{
		{"sunset", 10, "…", "sunset"},
		{"sunset over sea", 8, "…", "sunset …"},
		{"日落的海边", 5, "…", "日落…"},
		{"日落的海边", 4, "", "日落"},
		{"abc", 0, "…", ""},
		{"abcdef", 2, "...", "ab"},
	}
	for _, tc := range cases {
		if got := TruncateByWidth(tc.in, tc.w, tc.ellipsis); got != tc.want {
			t.Fatalf("TruncateByWidth(%q,%d,%q)=%q want %q", tc.in, tc.w, tc.ellipsis, got, tc.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("日", 4); got != "日  " {
		t.Fatalf("PadRight = %q", got)
	}
	if got := PadLeft("7.0", 5); got != "  7.0" {
		t.Fatalf("PadLeft = %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Fatalf("PadRight should not cut: %q", got)
	}
}
