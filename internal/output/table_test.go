package output

import (
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bold",
			input: "\x1b[1mhello\x1b[0m",
			want:  5,
		},
		{
			name:  "color",
			input: "\x1b[31mred\x1b[0m",
			want:  3,
		},
		{
			name:  "multiple sequences",
			input: "\x1b[1m\x1b[34mblue bold\x1b[0m",
			want:  9,
		},
		{
			name:  "no ansi",
			input: "plain text",
			want:  10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int
	}{
		{"needs padding", "hi", 10, 10},
		{"already wide", "long enough text", 5, 16},
		{"exact width", "abcde", 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if visualLen(got) != tc.want {
				t.Errorf("pad(%q, %d) visual length = %d, want %d",
					tc.input, tc.width, visualLen(got), tc.want)
			}
		})
	}
}

func TestPad_StyledCellKeepsEscapes(t *testing.T) {
	styled := "\x1b[32mok\x1b[0m"
	got := pad(styled, 6)
	if !strings.HasPrefix(got, styled) {
		t.Errorf("pad() stripped escape sequences: %q", got)
	}
	if visualLen(got) != 6 {
		t.Errorf("pad() visual length = %d, want 6", visualLen(got))
	}
}

func TestTable_RenderAlignsColumns(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("NAME", "TYPE")
	tbl.AddRow("shop", "web")
	tbl.AddRow("billing-service", "api")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Render() returned %d lines, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[3], "billing-service  api") {
		t.Errorf("unexpected row: %q", lines[3])
	}
	// Short row padded to the widest cell.
	if !strings.HasPrefix(lines[2], "shop             web") {
		t.Errorf("unexpected row: %q", lines[2])
	}
}
