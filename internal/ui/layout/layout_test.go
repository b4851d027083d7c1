package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(4); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", "EN  3/5", 80)
	for _, want := range []string{AppName, "Quiz", "EN  3/5"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "back"}}, 80)
	if !strings.Contains(f, "Esc") || !strings.Contains(f, "back") {
		t.Errorf("footer = %q", f)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	frame := RenderFrame("head", "body", "foot", 20, 10)
	if got := strings.Count(frame, "\n") + 1; got != 10 {
		t.Errorf("frame has %d lines, want 10", got)
	}
}
