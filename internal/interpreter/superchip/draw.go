package superchip

import (
	"github.com/nikoof/octarou/internal/instruction"
)

const (
	spriteWidth      = 8
	superSpriteWidth = 16
	superSpriteRows  = 16
)

// draw XORs a sprite onto the display and sets VF on collision.
func (c *Superchip) draw(ins instruction.Draw) error {
	s := c.state
	vx, vy := int(s.V[ins.X]), int(s.V[ins.Y])

	var collision bool
	var err error

	switch {
	case !c.hires:
		collision, err = c.drawLores(vx, vy, int(ins.Height))
	case ins.Height == 0:
		collision, err = c.drawSuper(vx, vy)
	default:
		collision, err = c.drawHires(vx, vy, int(ins.Height))
	}
	if err != nil {
		return err
	}

	s.SetFlag(collision)
	return nil
}

// drawHires draws height rows of 8 pixels at (x, y) in high resolution.
func (c *Superchip) drawHires(x, y, height int) (bool, error) {
	s := c.state
	rows, err := s.MemoryRange(height)
	if err != nil {
		return false, err
	}

	x %= DisplayWidth
	y %= DisplayHeight
	collision := false

	for row, data := range rows {
		if y+row >= DisplayHeight {
			break
		}
		for col := range spriteWidth {
			if x+col >= DisplayWidth {
				break
			}
			bit := (data >> (spriteWidth - 1 - col)) & 1
			if s.Display.Flip(x+col, y+row, bit) {
				collision = true
			}
		}
	}
	return collision, nil
}

// drawSuper draws a 16x16 sprite of 16 big-endian two byte rows at (x, y).
func (c *Superchip) drawSuper(x, y int) (bool, error) {
	s := c.state
	data, err := s.MemoryRange(2 * superSpriteRows)
	if err != nil {
		return false, err
	}

	x %= DisplayWidth
	y %= DisplayHeight
	collision := false

	for row := range superSpriteRows {
		if y+row >= DisplayHeight {
			break
		}
		bits := uint16(data[2*row])<<8 | uint16(data[2*row+1])
		for col := range superSpriteWidth {
			if x+col >= DisplayWidth {
				break
			}
			bit := byte(bits>>(superSpriteWidth-1-col)) & 1
			if s.Display.Flip(x+col, y+row, bit) {
				collision = true
			}
		}
	}
	return collision, nil
}

// drawLores draws height rows of 8 pixels at (x, y) in low resolution,
// every sprite pixel covers 2x2 framebuffer pixels.
func (c *Superchip) drawLores(x, y, height int) (bool, error) {
	s := c.state
	rows, err := s.MemoryRange(height)
	if err != nil {
		return false, err
	}

	x = 2 * x % DisplayWidth
	y = 2 * y % DisplayHeight
	collision := false

	for row := range 2 * height {
		if y+row >= DisplayHeight {
			break
		}
		data := rows[row/2]
		for col := range 2 * spriteWidth {
			if x+col >= DisplayWidth {
				break
			}
			bit := (data >> (spriteWidth - 1 - col/2)) & 1
			if s.Display.Flip(x+col, y+row, bit) {
				collision = true
			}
		}
	}
	return collision, nil
}
