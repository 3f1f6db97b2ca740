// Package termview runs a session in a terminal. The display is drawn with
// half block characters, two display rows per text line.
package termview

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nikoof/octarou/internal/interpreter"
)

// Terminal control sequences.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

var halfBlocks = [4]rune{
	' ', // none
	'▀', // upper
	'▄', // lower
	'█', // both
}

// Render writes the display followed by the status line. Lines end with
// CRLF since the terminal is in raw mode.
func Render(w io.Writer, display *interpreter.Display, status string) error {
	buf := bufio.NewWriter(w)
	if _, err := buf.WriteString(cursorHome); err != nil {
		return fmt.Errorf("writing cursor position: %w", err)
	}

	for y := 0; y < display.Height(); y += 2 {
		for x := range display.Width() {
			index := display.At(x, y) | display.At(x, y+1)<<1
			if _, err := buf.WriteRune(halfBlocks[index]); err != nil {
				return fmt.Errorf("writing display: %w", err)
			}
		}
		if _, err := buf.WriteString("\r\n"); err != nil {
			return fmt.Errorf("writing display: %w", err)
		}
	}

	if _, err := fmt.Fprintf(buf, "%s\x1b[K\r\n", status); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
