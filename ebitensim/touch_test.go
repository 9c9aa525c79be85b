package ebitensim

import (
	"testing"

	"github.com/phanxgames/lcdgui"
)

type rawSample struct {
	x, y    int
	pressed bool
}

func TestTouchSample(t *testing.T) {
	tests := []struct {
		name  string
		scale int
		in    []rawSample
		want  []lcdgui.TouchData
	}{
		{
			name:  "hover is ignored",
			scale: 1,
			in:    []rawSample{{5, 5, false}, {9, 9, false}},
			want:  nil,
		},
		{
			name:  "press and release",
			scale: 1,
			in:    []rawSample{{5, 5, true}, {5, 5, true}, {5, 5, false}},
			want:  []lcdgui.TouchData{{X: 5, Y: 5, Pressed: true}, {X: 5, Y: 5}},
		},
		{
			name:  "held move",
			scale: 1,
			in:    []rawSample{{1, 1, true}, {2, 1, true}, {2, 1, true}, {2, 3, true}},
			want: []lcdgui.TouchData{
				{X: 1, Y: 1, Pressed: true},
				{X: 2, Y: 1, Pressed: true},
				{X: 2, Y: 3, Pressed: true},
			},
		},
		{
			name:  "scaled window",
			scale: 2,
			in:    []rawSample{{10, 20, true}, {11, 21, true}, {12, 21, true}, {12, 21, false}},
			want: []lcdgui.TouchData{
				{X: 5, Y: 10, Pressed: true},
				{X: 6, Y: 10, Pressed: true},
				{X: 6, Y: 10},
			},
		},
		{
			name:  "zero scale treated as one",
			scale: 0,
			in:    []rawSample{{7, 8, true}},
			want:  []lcdgui.TouchData{{X: 7, Y: 8, Pressed: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			touch := NewTouch(tt.scale)
			for _, s := range tt.in {
				touch.sample(s.x, s.y, s.pressed)
			}
			var got []lcdgui.TouchData
			for {
				d, ok := touch.ReadTouch()
				if !ok {
					break
				}
				got = append(got, d)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
