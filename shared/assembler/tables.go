package assembler

import (
	"io"
	"strings"

	"github.com/samber/lo"

	"sicpass/shared"
)

type ListingRow struct {
	Address string // blank for lines that take no address
	Label   string
	Op      string
	Operand string
}

type SymbolRow struct {
	Label   string
	Address shared.Address
}

type LiteralRow struct {
	Text    string
	Address shared.Address
}

func (info *Info) Listing() []ListingRow {
	return lo.Map(info.records, func(rec Record, _ int) ListingRow {
		row := ListingRow{
			Label:   orNoField(rec.Line.Label),
			Op:      rec.Line.Op,
			Operand: orNoField(rec.Line.Operand),
		}
		if addr, ok := rec.Address(); ok {
			row.Address = shared.FormatAddress(addr)
		}
		return row
	})
}

// SymbolTable has one row per labelled line, in source order. Literal pool
// lines (label *) and placeholders are left out.
func (info *Info) SymbolTable() []SymbolRow {
	return lo.FilterMap(info.records, func(rec Record, _ int) (SymbolRow, bool) {
		if rec.Line.Label == "" || rec.Line.Label == SelfRef {
			return SymbolRow{}, false
		}
		addr, ok := rec.SymbolAddress()
		return SymbolRow{Label: rec.Line.Label, Address: addr}, ok
	})
}

func (info *Info) LiteralTable() []LiteralRow {
	return lo.Map(info.literals.literals, func(lit Literal, _ int) LiteralRow {
		return LiteralRow{Text: lit.Text, Address: lit.Address}
	})
}

func writeRows(w io.Writer, rows [][]string) error {
	for _, row := range rows {
		if _, err := io.WriteString(w, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteIntermediate writes the normalized source: label, operation, operand.
func (info *Info) WriteIntermediate(w io.Writer) error {
	return writeRows(w, lo.Map(info.lines, func(line InLine, _ int) []string {
		return []string{orNoField(line.Label), line.Op, orNoField(line.Operand)}
	}))
}

func (info *Info) WriteListing(w io.Writer) error {
	return writeRows(w, lo.Map(info.Listing(), func(row ListingRow, _ int) []string {
		return []string{row.Address, row.Label, row.Op, row.Operand}
	}))
}

func (info *Info) WriteSymbols(w io.Writer) error {
	return writeRows(w, lo.Map(info.SymbolTable(), func(row SymbolRow, _ int) []string {
		return []string{row.Label, shared.FormatAddress(row.Address)}
	}))
}

func (info *Info) WriteLiterals(w io.Writer) error {
	return writeRows(w, lo.Map(info.LiteralTable(), func(row LiteralRow, _ int) []string {
		return []string{row.Text, shared.FormatAddress(row.Address)}
	}))
}
