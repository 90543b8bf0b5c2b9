package ui

import (
	"testing"

	"cydpanel/panel/link"
)

func TestButtonsDoNotOverlap(t *testing.T) {
	screen := Rect{W: ScreenW, H: ContentH}
	for i, a := range Buttons {
		if a.ID != i {
			t.Fatalf("Buttons[%d].ID = %d", i, a.ID)
		}
		if a.Rect.X < 0 || a.Rect.Y < 0 || a.Rect.X+a.Rect.W > screen.W || a.Rect.Y+a.Rect.H > screen.H {
			t.Fatalf("Buttons[%d] %+v leaves the content area", i, a.Rect)
		}
		for j := i + 1; j < len(Buttons); j++ {
			if a.Rect.Overlaps(Buttons[j].Rect) {
				t.Fatalf("Buttons[%d] overlaps Buttons[%d]", i, j)
			}
		}
	}
}

func TestDialogGeometry(t *testing.T) {
	if DialogRect != (Rect{X: 20, Y: 40, W: 280, H: 140}) {
		t.Fatalf("DialogRect = %+v", DialogRect)
	}
	if YesRect != (Rect{X: 40, Y: 128, W: 110, H: 40}) {
		t.Fatalf("YesRect = %+v", YesRect)
	}
	if NoRect != (Rect{X: 170, Y: 128, W: 110, H: 40}) {
		t.Fatalf("NoRect = %+v", NoRect)
	}
	if YesRect.Overlaps(NoRect) {
		t.Fatal("yes and no overlap")
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{14, 14, true},
		{15, 10, false},
		{10, 15, false},
		{9, 12, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Fatalf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestButtonActionsMatchVocabulary(t *testing.T) {
	for i, b := range Buttons {
		if b.Action != link.Actions[i] {
			t.Fatalf("Buttons[%d].Action = %q, want %q", i, b.Action, link.Actions[i])
		}
	}
}
