package montepi

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Classification
	}{
		{"origin", Point{0, 0}, Hit},
		{"inside diagonal", Point{0.5, 0.5}, Hit},
		{"on boundary x", Point{1, 0}, Hit},
		{"on boundary y", Point{0, -1}, Hit},
		{"corner", Point{1, 1}, Miss},
		{"negative corner", Point{-1, -1}, Miss},
		{"just outside", Point{0.8, 0.61}, Miss},
		{"just inside", Point{0.6, 0.6}, Hit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassificationString(t *testing.T) {
	if got := Hit.String(); got != "Hit" {
		t.Errorf("Hit.String() = %q", got)
	}
	if got := Miss.String(); got != "Miss" {
		t.Errorf("Miss.String() = %q", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
