package core

// Screen is the display pixel buffer: width × height cells, row-major,
// one Color per cell. The game writes into it and the platform decides
// how to put it on a terminal.
type Screen struct {
	width  int
	height int
	pix    []Color
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 1),
		height: Max(height, 1),
	}
	s.pix = make([]Color, s.width*s.height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Space returns the coordinate space covered by the screen.
func (s *Screen) Space() Space {
	return NewSpace(s.width, s.height)
}

// Pixels exposes the row-major backing buffer.
func (s *Screen) Pixels() []Color {
	return s.pix
}

// Index returns the buffer offset of c.
func (s *Screen) Index(c Coord) int {
	return c.Y*s.width + c.X
}

// Fill sets every cell to c.
func (s *Screen) Fill(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Set places a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
}

// Get returns the color at the given position.
// Returns black for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorBlack
	}
	return s.pix[y*s.width+x]
}

// DrawRect fills every on-screen cell covered by r.
func (s *Screen) DrawRect(r Rect, c Color) {
	s.Space().Cells(r, func(at Coord) {
		s.pix[s.Index(at)] = c
	})
}
