package listing

import (
	"fmt"
	"io"
	"slices"

	"github.com/nikoof/octarou/internal/instruction"
	"github.com/nikoof/octarou/internal/interpreter"
)

// Line is a single disassembled opcode of a program.
type Line struct {
	Address uint16
	Opcode  uint16
	Code    string
	Label   string
	Data    bool // opcode does not decode to an instruction
}

// Options of the listing writer.
type Options struct {
	HexComments    bool
	OffsetComments bool
}

// Disassemble decodes a program image that is loaded at the program start
// address. Every jump and call target inside the program gets a label, as
// does the instruction a conditional skip continues at.
// A trailing odd byte is listed as data.
func Disassemble(program []byte) []Line {
	lines := make([]Line, 0, len(program)/instruction.Size+1)
	targets := map[uint16]struct{}{
		interpreter.ProgramStart: {},
	}

	for offset := 0; offset < len(program); offset += instruction.Size {
		address := uint16(interpreter.ProgramStart + offset)

		if offset+1 >= len(program) {
			lines = append(lines, Line{
				Address: address,
				Opcode:  uint16(program[offset]),
				Code:    fmt.Sprintf(".byte $%02X", program[offset]),
				Data:    true,
			})
			break
		}

		opcode := uint16(program[offset])<<8 | uint16(program[offset+1])
		line := Line{
			Address: address,
			Opcode:  opcode,
		}

		ins, err := instruction.Decode(opcode)
		if err != nil {
			line.Code = fmt.Sprintf(".word $%04X", opcode)
			line.Data = true
			lines = append(lines, line)
			continue
		}

		line.Code = formatCode(opcode, ins)
		switch i := ins.(type) {
		case instruction.Jump:
			targets[i.Address] = struct{}{}
		case instruction.Call:
			targets[i.Address] = struct{}{}
		default:
			if IsSkip(opcode) {
				targets[address+2*instruction.Size] = struct{}{}
			}
		}
		lines = append(lines, line)
	}

	for i := range lines {
		if _, ok := targets[lines[i].Address]; ok {
			lines[i].Label = labelName(lines[i].Address)
		}
	}
	return lines
}

// labelName returns the label of a code address.
func labelName(address uint16) string {
	if address == interpreter.ProgramStart {
		return "Start"
	}
	return fmt.Sprintf("_label_%03x", address)
}

// Labels returns the sorted addresses of all labels of the listing.
func Labels(lines []Line) []uint16 {
	var addresses []uint16
	for _, line := range lines {
		if line.Label != "" {
			addresses = append(addresses, line.Address)
		}
	}
	slices.Sort(addresses)
	return addresses
}

// Write outputs the lines as an assembler listing.
func Write(w io.Writer, lines []Line, opts Options) error {
	for _, line := range lines {
		if line.Label != "" {
			if _, err := fmt.Fprintf(w, "\n%s:\n", line.Label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		text := "  " + line.Code
		if comment := lineComment(line, opts); comment != "" {
			text = fmt.Sprintf("%-30s ; %s", text, comment)
		}

		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

func lineComment(line Line, opts Options) string {
	var comment string
	if opts.OffsetComments {
		comment = fmt.Sprintf("$%03X", line.Address)
	}
	if opts.HexComments && !line.Data {
		if comment != "" {
			comment += " "
		}
		comment += fmt.Sprintf("%02X %02X", byte(line.Opcode>>8), byte(line.Opcode))
	}
	return comment
}
