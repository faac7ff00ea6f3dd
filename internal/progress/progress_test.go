package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		value, target, want int
	}{
		{0, 100, 0},
		{50, 100, 50},
		{100, 100, 100},
		{1, 3, 33},
		{7, 1000, 0},
		{500, 1000, 50},
		{5, 0, 0},  // divide-by-zero guard
		{5, -1, 0}, // negative target guard
	}
	for _, tt := range tests {
		if got := Percent(tt.value, tt.target); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.value, tt.target, got, tt.want)
		}
	}
}

func TestCrossed(t *testing.T) {
	tests := []struct {
		prev, cur int
		want      bool
	}{
		{0, 0, false},
		{0, 9, false},
		{9, 10, true},
		{10, 19, false},
		{19, 20, true},
		{99, 100, true},
		{0, 100, true},
	}
	for _, tt := range tests {
		if got := Crossed(tt.prev, tt.cur); got != tt.want {
			t.Errorf("Crossed(%d, %d) = %v, want %v", tt.prev, tt.cur, got, tt.want)
		}
	}
}

func TestUpdateThrottlesRedraws(t *testing.T) {
	var buf bytes.Buffer
	bar := NewBar(&buf)
	for i := 1; i <= 1000; i++ {
		bar.Update(i, i-1, 1000)
	}
	// One redraw per bucket entered: 10%, 20%, ..., 100%. Never more than
	// eleven for any phase.
	redraws := strings.Count(buf.String(), "\r")
	if redraws != 10 {
		t.Errorf("1000 updates produced %d redraws, want 10", redraws)
	}
}

func TestUpdateZeroTargetIsNoop(t *testing.T) {
	var buf bytes.Buffer
	bar := NewBar(&buf)
	bar.Update(1, 0, 0)
	bar.Update(1, 0, -3)
	if buf.Len() != 0 {
		t.Errorf("zero target wrote %q, want nothing", buf.String())
	}
}

func TestUpdateBarFormat(t *testing.T) {
	tests := []struct {
		current, previous, target int
		want                      string
	}{
		{50, 0, 100, "[#####-----]  50%\r"},
		{100, 89, 100, "[##########] 100%\r"},
		{10, 9, 100, "[#---------]  10%\r"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		NewBar(&buf).Update(tt.current, tt.previous, tt.target)
		if got := buf.String(); got != tt.want {
			t.Errorf("Update(%d, %d, %d) wrote %q, want %q",
				tt.current, tt.previous, tt.target, got, tt.want)
		}
	}
}

func TestNewBarNilWriter(t *testing.T) {
	bar := NewBar(nil)
	bar.Update(100, 0, 100) // must not panic
}
