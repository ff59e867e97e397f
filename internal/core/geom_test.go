package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: true,
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 2, 3, 3),
			want: true,
		},
		{
			name: "separate",
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(10, 10, 5, 5),
			want: false,
		},
		{
			name: "touching edges",
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(5, 0, 5, 5),
			want: false,
		},
		{
			name: "touching corners",
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(5, 5, 5, 5),
			want: false,
		},
		{
			name: "one pixel overlap",
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(4, 4, 5, 5),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"right edge exclusive", 6, 5, false},
		{"bottom edge exclusive", 4, 8, false},
		{"outside left", 1, 5, false},
		{"outside above", 4, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, want 60", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 25 || cy != 40 {
		t.Errorf("Center() = (%d, %d), want (25, 40)", cx, cy)
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b RectF
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRectF(0, 0, 50, 50),
			b:    NewRectF(25, 25, 50, 50),
			want: true,
		},
		{
			name: "separate",
			a:    NewRectF(0, 0, 50, 50),
			b:    NewRectF(100, 100, 50, 50),
			want: false,
		},
		{
			name: "touching edges excluded",
			a:    NewRectF(0, 0, 50, 50),
			b:    NewRectF(50, 0, 50, 50),
			want: false,
		},
		{
			name: "fractional overlap",
			a:    NewRectF(0, 0, 50, 50),
			b:    NewRectF(49.9, 0, 50, 50),
			want: true,
		},
		{
			name: "bounding square around a circle center",
			a:    NewRectF(375, 740, 50, 50),
			b:    NewRectF(400-15, 730-15, 30, 30),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(10.5, 20.5, 30, 40)

	if r.Right() != 40.5 {
		t.Errorf("Right() = %v, want 40.5", r.Right())
	}
	if r.Bottom() != 60.5 {
		t.Errorf("Bottom() = %v, want 60.5", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 25.5 || cy != 40.5 {
		t.Errorf("Center() = (%v, %v), want (25.5, 40.5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1.0 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, want 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0.0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, want 0", got)
	}
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %v, want 0.5", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min broken")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max broken")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs broken")
	}
}
