package shared

import "fmt"

type (
	Address = uint64
)

// Section is one of the independently advancing address spaces a line can
// be laid out in.
type Section uint8

const (
	SectionDefault  Section = iota // format 1/2/3 code
	SectionExtended                // format 4 code
	SectionData                    // WORD, BYTE and literals
	SectionReserve                 // RESW, RESB
	NumSections
)

// Counters holds one location counter per section.
type Counters = [NumSections]Address

var sectionNames = [NumSections]string{
	SectionDefault:  "DEFAULT",
	SectionExtended: "DEFAULTB",
	SectionData:     "CDATA",
	SectionReserve:  "CBLKS",
}

func (s Section) String() string {
	if s < NumSections {
		return sectionNames[s]
	}
	return fmt.Sprintf("Section(%d)", uint8(s))
}

// SectionByName looks up one of the reserved block names.
func SectionByName(name string) (Section, bool) {
	for s, n := range sectionNames {
		if n == name {
			return Section(s), true
		}
	}
	return 0, false
}

type Mode uint8

const (
	ModeSIC Mode = iota
	ModeSICXE
)

func (m Mode) String() string {
	switch m {
	case ModeSIC:
		return "SIC"
	case ModeSICXE:
		return "SIC/XE"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// FormatAddress renders an address the way every output table does.
func FormatAddress(addr Address) string {
	return fmt.Sprintf("%04X", addr)
}
