package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPadBlockFixesDimensions(t *testing.T) {
	out := padBlock("abc\nlonger line here\nx\ny\nz", 6, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if lipgloss.Width(l) != 6 {
			t.Fatalf("expected width 6, got %d for %q", lipgloss.Width(l), l)
		}
	}
	if padBlock("abc", 0, 3) != "" {
		t.Fatal("expected empty block for zero width")
	}
}

func TestSpread(t *testing.T) {
	cases := []struct {
		left, right string
		width       int
		want        string
	}{
		{"ab", "cd", 6, "ab  cd"},
		{"abcdef", "xy", 6, "abc xy"},
		{"ab", "toolong", 4, "tool"},
	}
	for _, tc := range cases {
		if got := spread(tc.left, tc.right, tc.width); got != tc.want {
			t.Fatalf("spread(%q, %q, %d) = %q, want %q", tc.left, tc.right, tc.width, got, tc.want)
		}
	}
}

func TestRoundWidthToNearestBucket(t *testing.T) {
	cases := map[int]int{0: 80, 15: 15, 20: 20, 81: 80, 119: 100}
	for in, want := range cases {
		if got := roundWidthToNearestBucket(in); got != want {
			t.Fatalf("roundWidthToNearestBucket(%d) = %d, want %d", in, got, want)
		}
	}
}
