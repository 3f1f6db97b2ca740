package interpreter

// Display is a monochrome framebuffer with one byte per pixel, 0 or 1.
type Display struct {
	width  int
	height int
	pixels []byte
}

// NewDisplay returns a cleared display of the given dimensions.
func NewDisplay(width, height int) *Display {
	return &Display{
		width:  width,
		height: height,
		pixels: make([]byte, width*height),
	}
}

// Width returns the display width in pixels.
func (d *Display) Width() int {
	return d.width
}

// Height returns the display height in pixels.
func (d *Display) Height() int {
	return d.height
}

// At returns the pixel at the given position, positions outside of the
// display read as 0.
func (d *Display) At(x, y int) byte {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return 0
	}
	return d.pixels[y*d.width+x]
}

// Row returns the pixels of row y. The returned slice aliases the framebuffer.
func (d *Display) Row(y int) []byte {
	return d.pixels[y*d.width : (y+1)*d.width]
}

// Rows returns all rows from top to bottom.
func (d *Display) Rows() [][]byte {
	rows := make([][]byte, d.height)
	for y := range rows {
		rows[y] = d.Row(y)
	}
	return rows
}

// Pixels returns the framebuffer in row major order.
func (d *Display) Pixels() []byte {
	return d.pixels
}

// Clear sets all pixels to 0.
func (d *Display) Clear() {
	clear(d.pixels)
}

// Flip XORs the pixel at the given position with bit and returns true if a
// set pixel got cleared. Pixels outside of the display are clipped.
func (d *Display) Flip(x, y int, bit byte) bool {
	if bit == 0 || x < 0 || y < 0 || x >= d.width || y >= d.height {
		return false
	}
	i := y*d.width + x
	old := d.pixels[i]
	d.pixels[i] ^= bit
	return old&bit == 1
}

// ScrollDown moves all rows down by n, the top n rows are cleared.
func (d *Display) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	if n >= d.height {
		d.Clear()
		return
	}
	copy(d.pixels[n*d.width:], d.pixels[:(d.height-n)*d.width])
	clear(d.pixels[:n*d.width])
}

// ScrollRight moves all columns right by n, the leftmost n columns are cleared.
func (d *Display) ScrollRight(n int) {
	if n <= 0 {
		return
	}
	n = min(n, d.width)
	for y := range d.height {
		row := d.Row(y)
		copy(row[n:], row[:d.width-n])
		clear(row[:n])
	}
}

// ScrollLeft moves all columns left by n, the rightmost n columns are cleared.
func (d *Display) ScrollLeft(n int) {
	if n <= 0 {
		return
	}
	n = min(n, d.width)
	for y := range d.height {
		row := d.Row(y)
		copy(row, row[n:])
		clear(row[d.width-n:])
	}
}
