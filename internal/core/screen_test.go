package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(256, 128)

	if s.Width() != 256 {
		t.Errorf("Width() = %d, expected 256", s.Width())
	}
	if s.Height() != 128 {
		t.Errorf("Height() = %d, expected 128", s.Height())
	}
	if len(s.Pixels()) != 256*128 {
		t.Errorf("Pixels() has %d cells, expected %d", len(s.Pixels()), 256*128)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)
	red := RGB(255, 0, 0)

	s.Set(3, 2, red)
	if s.Get(3, 2) != red {
		t.Errorf("Get(3, 2) = %+v, expected %+v", s.Get(3, 2), red)
	}
	if s.Pixels()[2*10+3] != red {
		t.Error("Set should write row-major")
	}

	// Out of bounds is ignored
	s.Set(-1, 0, red)
	s.Set(10, 0, red)
	s.Set(0, 5, red)
	if s.Get(-1, 0) != ColorBlack {
		t.Error("Get out of bounds should return black")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill(ColorWhite)

	for i, c := range s.Pixels() {
		if c != ColorWhite {
			t.Fatalf("cell %d = %+v after Fill, expected white", i, c)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 8)
	blue := RGB(0, 0, 255)

	// 4x4 centered at (1,1) is clipped to x,y in [0,2]
	s.DrawRect(NewRect(1, 1, 4, 4), blue)

	count := 0
	for _, c := range s.Pixels() {
		if c == blue {
			count++
		}
	}
	if count != 9 {
		t.Errorf("DrawRect colored %d cells, expected 9", count)
	}
	if s.Get(0, 0) != blue || s.Get(2, 2) != blue || s.Get(3, 3) == blue {
		t.Error("DrawRect covered the wrong cells")
	}
}

func TestColorDarken(t *testing.T) {
	c := RGB(255, 15, 5).Darken(10)
	if c != RGB(245, 5, 0) {
		t.Errorf("Darken(10) = %+v, expected {245 5 0}", c)
	}
	if RGB(0, 0, 0).Darken(10) != ColorBlack {
		t.Error("Darken should floor at zero")
	}
}

func TestSaturatingU8(t *testing.T) {
	if SatAddU8(250, 10) != 255 {
		t.Error("SatAddU8(250, 10) should be 255")
	}
	if SatAddU8(1, 2) != 3 {
		t.Error("SatAddU8(1, 2) should be 3")
	}
	if SatSubU8(3, 5) != 0 {
		t.Error("SatSubU8(3, 5) should be 0")
	}
	if SatSubU8(5, 3) != 2 {
		t.Error("SatSubU8(5, 3) should be 2")
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 0, 125).Hex(); got != "#ff007d" {
		t.Errorf("Hex() = %q, expected #ff007d", got)
	}
}
