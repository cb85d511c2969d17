package shared

import "strings"

// Format is the size category of a machine instruction. FormatNone marks
// anything that is not in the mnemonic tables.
type Format uint8

const (
	FormatNone Format = iota
	Format1
	Format2
	Format3
	Format4
)

// Size in bytes; FormatNone falls back to the format 3 size.
func (f Format) Size() Address {
	switch f {
	case Format1:
		return 1
	case Format2:
		return 2
	case Format4:
		return 4
	}
	return 3
}

type Instruction struct {
	Name   string
	Format Format
}

type ISA struct {
	Instructions map[string]Instruction
}

func GetDefaultISA() ISA {
	return ISA{
		Instructions: InstMap(),
	}
}

// Lookup resolves a mnemonic, honouring the leading + of extended
// addressing. Unknown mnemonics come back with FormatNone.
func (isa ISA) Lookup(op string) Instruction {
	if name, extended := strings.CutPrefix(op, "+"); extended {
		return Instruction{Name: name, Format: Format4}
	}
	inst, found := isa.Instructions[op]
	if !found {
		return Instruction{Name: op, Format: FormatNone}
	}
	return inst
}

type inst = Instruction // shorthand for these defs
func InstMap() map[string]Instruction {
	m := make(map[string]Instruction)
	add := func(f Format, names ...string) {
		for _, name := range names {
			m[name] = inst{Name: name, Format: f}
		}
	}
	add(Format1, "FIX", "FLOAT", "HIO", "SIO", "TIO", "NORM")
	add(Format2, "ADDR", "CLEAR", "COMPR", "DIVR", "MULR", "RMO",
		"SHIFTR", "SHIFTL", "SUBR", "SVC", "TIXR")
	add(Format3, "ADD", "ADDF", "AND", "COMP", "COMPF", "DIV", "J", "JEQ",
		"JGT", "JLT", "JSUB", "LDA", "LDB", "LDCH", "LDF", "LDL", "LDS",
		"LDT", "LDX", "LPS", "MUL", "MULF", "OR", "RD", "RSUB", "SSK",
		"STA", "STB", "STCH", "STF", "STI", "STL", "STS", "STSW", "STT",
		"STX", "SUB", "SUBF", "TD", "TIX", "WD")
	add(Format4, "CADD", "CSUB", "CLOAD", "CSTORE", "CJUMP")
	return m
}
