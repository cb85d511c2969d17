package assembler

import (
	"bufio"
	"io"
	"strings"

	"sicpass/shared"
)

const (
	NoField  = "&" // rendering of an empty label or operand
	SelfRef  = "*" // label of literal pool lines, operand of EQU *
	comment  = ";"
	trailing = ","
)

type InLine struct {
	Raw     string //Linha original
	Label   string //Rótulo
	Op      string //Operação (instrução ou diretiva)
	Operand string //Operando
	Index   int
}

// parseAsmLine splits a raw line into label, operation and operand.
// Lines without tokens give shared.EmptyLineErr.
func parseAsmLine(rawLine string) (line InLine, err error) {
	code, _, _ := strings.Cut(rawLine, comment)
	fields := strings.Fields(code)
	for i, f := range fields {
		fields[i] = strings.TrimRight(strings.ToUpper(f), trailing)
	}

	line.Raw = rawLine
	switch len(fields) {
	case 0:
		return InLine{}, shared.EmptyLineErr
	case 1:
		line.Op = fields[0]
	case 2:
		if fields[0] == SelfRef {
			line.Label, line.Op = fields[0], fields[1]
		} else {
			line.Op, line.Operand = fields[0], fields[1]
		}
	default:
		// "BUFFER, X" keeps its index register
		line.Label, line.Op = fields[0], fields[1]
		line.Operand = strings.Join(fields[2:], trailing)
	}
	return line, nil
}

// ReadSource normalizes every line of r. Blank and comment-only lines are
// dropped, the remaining lines are indexed from 0. Lines have no length
// limit.
func ReadSource(r io.Reader) ([]InLine, error) {
	var raw []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			raw = append(raw, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return ParseLines(raw), nil
}

// ParseLines is ReadSource over lines already held in memory.
func ParseLines(raw []string) []InLine {
	var lines []InLine
	for _, rawLine := range raw {
		line, err := parseAsmLine(rawLine)
		if err != nil {
			continue
		}
		line.Index = len(lines)
		lines = append(lines, line)
	}
	return lines
}

func orNoField(s string) string {
	if s == "" {
		return NoField
	}
	return s
}
