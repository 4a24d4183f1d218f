// Package loader provides TC16 assembly program loading.
//
// A program file holds one instruction per line, either "OP Rn Rm" for
// register-format instructions or "OP Rn imm" for immediate-format ones.
// Blank lines are skipped, and everything after a ';' or '#' is a comment.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
)

// MinImm and MaxImm bound the signed 6-bit immediate operand range.
const (
	MinImm = -32
	MaxImm = 31
)

// Program represents an assembled TC16 program ready for execution.
type Program struct {
	// Words contains the encoded instruction words in program order.
	Words []uint16
	// Path is the file the program was loaded from, if any.
	Path string
}

// Load reads and assembles a TC16 program file.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open program file: %w", err)
	}
	defer func() { _ = f.Close() }()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Program{Words: words, Path: path}, nil
}

// Parse assembles TC16 program text into instruction words.
func Parse(r io.Reader) ([]uint16, error) {
	var words []uint16

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		fields := strings.Fields(stripComment(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		word, err := assembleLine(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		if len(words) >= emu.InstrMemWords {
			return nil, fmt.Errorf("line %d: program exceeds instruction memory (%d words)",
				lineNum, emu.InstrMemWords)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	return words, nil
}

// assembleLine encodes a single "OP operand operand" line.
func assembleLine(fields []string) (uint16, error) {
	mnemonic := strings.ToUpper(fields[0])
	op, ok := insts.OpFromMnemonic(mnemonic)
	if !ok {
		return 0, fmt.Errorf("unknown mnemonic %q", fields[0])
	}
	if len(fields) != 3 {
		return 0, fmt.Errorf("%s expects 2 operands, got %d", mnemonic, len(fields)-1)
	}

	rs, err := parseRegister(fields[1])
	if err != nil {
		return 0, err
	}

	var word uint16
	if insts.FormatOf(op) == insts.FormatReg {
		rt, err := parseRegister(fields[2])
		if err != nil {
			return 0, err
		}
		word = insts.EncodeReg(op, rs, rt)
	} else {
		imm, err := parseImmediate(fields[2])
		if err != nil {
			return 0, err
		}
		word = insts.EncodeImm(op, rs, imm)
	}

	// Word 0x0000 marks the end of the program in instruction memory, so
	// no real instruction may encode to it.
	if word == insts.SentinelWord {
		return 0, fmt.Errorf("%s %s %s encodes to the reserved empty word 0x0000",
			mnemonic, fields[1], fields[2])
	}

	return word, nil
}

func parseRegister(field string) (uint8, error) {
	if len(field) < 2 || (field[0] != 'R' && field[0] != 'r') {
		return 0, fmt.Errorf("expected register operand, got %q", field)
	}
	n, err := strconv.Atoi(field[1:])
	if err != nil {
		return 0, fmt.Errorf("expected register operand, got %q", field)
	}
	if n < 0 || n >= emu.NumRegs {
		return 0, fmt.Errorf("register %s out of range [R0, R63]", field)
	}
	return uint8(n), nil
}

func parseImmediate(field string) (int8, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("expected immediate operand, got %q", field)
	}
	if n < MinImm || n > MaxImm {
		return 0, fmt.Errorf("immediate %d out of range [%d, %d]", n, MinImm, MaxImm)
	}
	return int8(n), nil
}

func stripComment(line string) string {
	if i := strings.IndexAny(line, ";#"); i >= 0 {
		return line[:i]
	}
	return line
}
