package tilekit

import "testing"

func collectLine(x0, y0, x1, y1 int) [][2]int {
	var cells [][2]int
	l := NewLine(x0, y0, x1, y1)
	for l.Next() {
		x, y := l.Pos()
		cells = append(cells, [2]int{x, y})
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestLineProperties(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"single point", 3, 3, 3, 3},
		{"horizontal right", 0, 0, 7, 0},
		{"horizontal left", 7, 2, -3, 2},
		{"vertical down", 1, -4, 1, 9},
		{"vertical up", 1, 9, 1, -4},
		{"shallow", 0, 0, 10, 3},
		{"steep", 0, 0, 3, 10},
		{"diagonal", 0, 0, 5, 5},
		{"octant 3", 0, 0, -10, 4},
		{"octant 5", 2, 1, -9, -6},
		{"octant 6", 0, 0, -2, -11},
		{"octant 8", 0, 0, 12, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := collectLine(tt.x0, tt.y0, tt.x1, tt.y1)

			wantLen := max(abs(tt.x1-tt.x0), abs(tt.y1-tt.y0)) + 1
			if len(cells) != wantLen {
				t.Fatalf("len = %d, want %d", len(cells), wantLen)
			}
			if cells[0] != [2]int{tt.x0, tt.y0} {
				t.Errorf("first = %v, want (%d, %d)", cells[0], tt.x0, tt.y0)
			}
			if last := cells[len(cells)-1]; last != [2]int{tt.x1, tt.y1} {
				t.Errorf("last = %v, want (%d, %d)", last, tt.x1, tt.y1)
			}
			for i := 1; i < len(cells); i++ {
				dx := abs(cells[i][0] - cells[i-1][0])
				dy := abs(cells[i][1] - cells[i-1][1])
				if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
					t.Fatalf("step %d: %v -> %v is not an 8-connected step", i, cells[i-1], cells[i])
				}
			}

			l := NewLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if l.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", l.Len(), wantLen)
			}
		})
	}
}

func TestLineExhausted(t *testing.T) {
	l := NewLine(0, 0, 1, 0)
	n := 0
	for l.Next() {
		n++
	}
	if n != 2 {
		t.Fatalf("produced %d cells, want 2", n)
	}
	if l.Next() {
		t.Error("Next after exhaustion should keep returning false")
	}
}

func TestLineReset(t *testing.T) {
	l := NewLine(0, 0, 6, 2)
	l.Next()
	l.Next()
	l.Next()

	l.Reset()
	var cells [][2]int
	for l.Next() {
		x, y := l.Pos()
		cells = append(cells, [2]int{x, y})
	}
	want := collectLine(0, 0, 6, 2)
	if len(cells) != len(want) {
		t.Fatalf("after Reset produced %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestLineEarlyStop(t *testing.T) {
	l := NewLine(0, 0, 1000, 0)
	for l.Next() {
		x, _ := l.Pos()
		if x == 3 {
			break
		}
	}
	if x, _ := l.Pos(); x != 3 {
		t.Errorf("Pos().x = %d, want 3", x)
	}
}

func BenchmarkLine(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		l := NewLine(0, 0, 64, 17)
		for l.Next() {
			_, _ = l.Pos()
		}
	}
}
