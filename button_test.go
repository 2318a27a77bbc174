package montepi

import "testing"

func testButton(fired *int) *Button {
	return NewButton(Rect{X: 100, Y: 100, Width: 80, Height: 40}, "Test", func() {
		*fired++
	})
}

func TestButtonClick(t *testing.T) {
	tests := []struct {
		name               string
		pressX, pressY     float64
		releaseX, releaseY float64
		want               int
	}{
		{"press and release inside", 120, 110, 130, 120, 1},
		{"release on edge", 120, 110, 180, 140, 1},
		{"release outside cancels", 120, 110, 300, 300, 0},
		{"press outside never arms", 300, 300, 120, 110, 0},
		{"both outside", 300, 300, 301, 301, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fired := 0
			b := testButton(&fired)
			b.handlePress(tt.pressX, tt.pressY)
			b.handleRelease(tt.releaseX, tt.releaseY)
			if fired != tt.want {
				t.Errorf("fired %d times, want %d", fired, tt.want)
			}
		})
	}
}

func TestButtonReleaseDisarms(t *testing.T) {
	fired := 0
	b := testButton(&fired)

	b.handlePress(120, 110)
	b.handleRelease(120, 110)
	// A second release without a new press must not fire again.
	b.handleRelease(120, 110)
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
}

func TestButtonHoverFade(t *testing.T) {
	fired := 0
	b := testButton(&fired)

	b.handleMove(120, 110) // enter
	b.update(hoverFadeDuration * 2)
	if b.highlight != 1 {
		t.Errorf("highlight after hover = %v, want 1", b.highlight)
	}

	b.handleMove(0, 0) // leave
	b.update(hoverFadeDuration * 2)
	if b.highlight != 0 {
		t.Errorf("highlight after leave = %v, want 0", b.highlight)
	}
}

func TestButtonHoverMoveWithinBoundsKeepsTween(t *testing.T) {
	fired := 0
	b := testButton(&fired)

	b.handleMove(120, 110)
	b.update(hoverFadeDuration / 2)
	mid := b.highlight
	if mid <= 0 || mid >= 1 {
		t.Fatalf("mid-fade highlight = %v, want strictly between 0 and 1", mid)
	}

	// Moving within the bounds must not restart the fade.
	b.handleMove(150, 120)
	b.update(hoverFadeDuration)
	if b.highlight != 1 {
		t.Errorf("highlight = %v, want 1", b.highlight)
	}
}
