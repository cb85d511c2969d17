package assembler

import (
	"strconv"
	"strings"

	"sicpass/shared"
)

type Kind uint8

const (
	KindInstruction Kind = iota
	KindStart
	KindData    // WORD, BYTE, literals
	KindReserve // RESW, RESB
	KindEqu
	KindMarker // BASE, LTORG, END
	KindUse    // switches the active block
)

var kindNames = map[Kind]string{
	KindInstruction: "instruction",
	KindStart:       "start",
	KindData:        "data",
	KindReserve:     "reserve",
	KindEqu:         "equ",
	KindMarker:      "marker",
	KindUse:         "use",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Class is what the classifier decides about one line.
type Class struct {
	Kind    Kind
	Format  shared.Format // table format of the mnemonic, for the mode scan
	Size    shared.Address
	Section shared.Section
	Literal string // literal text when the line carries one
	Known   bool   // false when the size is the format 3 fallback
}

// consumes reports whether the line takes up space in its section.
func (c Class) consumes() bool {
	switch c.Kind {
	case KindInstruction, KindData, KindReserve:
		return true
	}
	return false
}

func Classify(isa shared.ISA, line InLine) Class {
	inst := isa.Lookup(line.Op)
	c := Class{Format: inst.Format, Known: true}

	switch {
	case line.Op == "START":
		c.Kind = KindStart
	case line.Op == "WORD":
		c.Kind, c.Size, c.Section = KindData, 3, shared.SectionData
	case line.Op == "BYTE":
		c.Kind, c.Size, c.Section = KindData, byteSize(line.Operand, 3), shared.SectionData
	case isLiteral(line.Op) || isLiteral(line.Operand):
		c.Literal = line.Operand
		if isLiteral(line.Op) {
			c.Literal = line.Op
		}
		c.Kind, c.Size, c.Section = KindData, literalSize(c.Literal), shared.SectionData
	case line.Op == "RESW":
		c.Kind, c.Size, c.Section = KindReserve, 3*parseDecimal(line.Operand), shared.SectionReserve
	case line.Op == "RESB":
		c.Kind, c.Size, c.Section = KindReserve, parseDecimal(line.Operand), shared.SectionReserve
	case line.Op == "EQU":
		c.Kind = KindEqu
	case line.Op == "BASE" || line.Op == "LTORG" || line.Op == "END":
		c.Kind = KindMarker
	case line.Op == "USE" || isBlockName(line.Operand):
		c.Kind = KindUse
	default:
		c.Kind, c.Size = KindInstruction, inst.Format.Size()
		c.Known = inst.Format != shared.FormatNone
		if inst.Format == shared.Format4 {
			c.Section = shared.SectionExtended
		}
	}
	return c
}

func isLiteral(tok string) bool {
	return strings.HasPrefix(tok, "=")
}

func isBlockName(tok string) bool {
	_, found := shared.SectionByName(tok)
	return found
}

// byteSize sizes an X'..' or C'..' constant. offset is the number of
// characters around the payload: 3 for BYTE operands, 4 for literals.
func byteSize(tok string, offset int) shared.Address {
	body := tok[min(len(tok), offset-3):]
	n := len(tok) - offset
	if n < 0 {
		return 0
	}
	switch {
	case strings.HasPrefix(body, "X"):
		return shared.Address(n / 2)
	case strings.HasPrefix(body, "C"):
		return shared.Address(n)
	}
	return 0
}

// literalSize sizes a literal; anything but a character or hex constant is
// a word.
func literalSize(tok string) shared.Address {
	body := strings.TrimPrefix(tok, "=")
	if strings.HasPrefix(body, "X'") || strings.HasPrefix(body, "C'") {
		return byteSize(tok, 4)
	}
	return 3
}

// parseDecimal is lenient: anything unparsable counts as zero.
func parseDecimal(tok string) shared.Address {
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseHex(tok string) (shared.Address, bool) {
	n, err := strconv.ParseUint(tok, 16, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
