package assembler

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/samber/lo"

	"sicpass/shared"
)

type Info struct {
	isa      shared.ISA
	lines    []InLine
	records  []Record
	symbols  map[string]shared.Address
	refs     map[string]shared.Address // what EQU expressions see
	literals literalPool
	mode     shared.Mode
	route    func(Class) shared.Section
	block    *shared.Section // set by USE, nil routes by class
	counters shared.Counters
	pos      int
	log      *log.Logger
}

// Record is the outcome of the first pass for one line. Start and Next hold
// every section's counter before and after the line.
type Record struct {
	Line        InLine
	Class       Class
	Section     shared.Section // section the line was routed to
	Start       shared.Counters
	Next        shared.Counters
	Value       shared.Address // EQU value
	Placeholder bool           // takes no address; listed blank
}

// Address is what the listing shows for the line: the counter after the
// line, the value of an EQU, or nothing for placeholders.
func (r Record) Address() (shared.Address, bool) {
	switch {
	case r.Placeholder:
		return 0, false
	case r.Class.Kind == KindEqu:
		return r.Value, true
	}
	return r.Next[r.Section], true
}

// RefAddress is the value a label on this line has inside an EQU
// expression: the DEFAULT counter at the line, whatever the line's section.
func (r Record) RefAddress() (shared.Address, bool) {
	switch {
	case r.Placeholder:
		return 0, false
	case r.Class.Kind == KindEqu:
		return r.Value, true
	}
	return r.Start[shared.SectionDefault], true
}

// SymbolAddress is the address a label on this line is bound to.
func (r Record) SymbolAddress() (shared.Address, bool) {
	switch {
	case r.Placeholder:
		return 0, false
	case r.Class.Kind == KindEqu:
		return r.Value, true
	}
	return r.Start[r.Section], true
}

func MakeAssembler() Info {
	return Info{
		isa:     shared.GetDefaultISA(),
		symbols: make(map[string]shared.Address),
		log:     log.New(io.Discard, "", 0),
	}
}

// SetLogger routes the warnings about defaulted values to l.
func (info *Info) SetLogger(l *log.Logger) {
	info.log = l
}

// Load replaces the source with lines, reindexing them.
func (info *Info) Load(lines []InLine) {
	info.lines = slices.Clone(lines)
	for i := range info.lines {
		info.lines[i].Index = i
	}
}

func (info *Info) ReadSource(r io.Reader) error {
	lines, err := ReadSource(r)
	if err != nil {
		return err
	}
	info.Load(lines)
	return nil
}

// AssembleFile runs the first pass over the file at path, warning through
// logger when it is not nil. If the file cannot be read the error wraps
// shared.ErrNoSource.
func AssembleFile(path string, logger *log.Logger) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", shared.ErrNoSource, path, err)
	}
	defer f.Close()

	info := MakeAssembler()
	if logger != nil {
		info.SetLogger(logger)
	}
	if err := info.ReadSource(f); err != nil {
		return nil, fmt.Errorf("%w %s: %w", shared.ErrNoSource, path, err)
	}
	info.FirstPass()
	return &info, nil
}

func (info *Info) reset() {
	info.records = make([]Record, 0, len(info.lines))
	info.symbols = make(map[string]shared.Address)
	info.refs = make(map[string]shared.Address)
	info.literals.reset()
	info.block = nil
	info.counters = shared.Counters{}
	info.pos = 0
}

// FirstPass assigns addresses to every loaded line. It can be run again and
// starts from scratch each time.
func (info *Info) FirstPass() []Record {
	info.reset()

	classes := make([]Class, len(info.lines))
	for i, line := range info.lines {
		classes[i] = Classify(info.isa, line)
	}
	info.mode = detectMode(classes)
	info.route = info.routeDefault
	if info.mode == shared.ModeSICXE {
		info.route = info.routeBlocks
	}

	for i, line := range info.lines {
		info.pos = i
		if i == 0 {
			info.records = append(info.records, info.seed(line, classes[i]))
			continue
		}
		info.records = append(info.records, info.step(line, classes[i]))
	}
	return info.records
}

// detectMode picks SIC/XE as soon as one line uses a format 1, 2 or 4
// mnemonic.
func detectMode(classes []Class) shared.Mode {
	xe := lo.SomeBy(classes, func(c Class) bool {
		return c.Format == shared.Format1 ||
			c.Format == shared.Format2 ||
			c.Format == shared.Format4
	})
	if xe {
		return shared.ModeSICXE
	}
	return shared.ModeSIC
}

func (info *Info) routeDefault(Class) shared.Section {
	return shared.SectionDefault
}

func (info *Info) routeBlocks(c Class) shared.Section {
	if info.block != nil {
		return *info.block
	}
	return c.Section
}

// seed reads the start address off the first line and starts every section
// there.
func (info *Info) seed(line InLine, c Class) Record {
	start, ok := parseHex(line.Operand)
	if !ok && line.Operand != "" {
		info.log.Printf("Warning: line 0: start address %q taken as 0", line.Operand)
	}
	for s := range info.counters {
		info.counters[s] = start
	}
	c.Kind = KindStart
	rec := Record{
		Line:    line,
		Class:   c,
		Section: shared.SectionDefault,
		Start:   info.counters,
		Next:    info.counters,
	}
	info.registerLabel(rec)
	return rec
}

func (info *Info) step(line InLine, c Class) Record {
	sec := info.route(c)
	here := info.counters[sec]
	rec := Record{
		Line:    line,
		Class:   c,
		Section: sec,
		Start:   info.counters,
	}

	switch {
	case c.Kind == KindEqu:
		rec.Value = info.resolveExpr(line.Operand, here)
	case c.Kind == KindUse:
		info.use(line.Operand)
		rec.Placeholder = true
	case !c.consumes(): // START past line 0, BASE, LTORG, END
		rec.Placeholder = true
	default:
		if !c.Known {
			info.log.Printf("Warning: line %d: unknown operation %v, sized as format 3", info.pos, line.Op)
		}
		if c.Literal != "" {
			info.literals.record(c.Literal, line.Index, c.Size, here)
		}
		info.counters[sec] = saturatingAdd(here, c.Size)
	}

	rec.Next = info.counters
	info.registerLabel(rec)
	return rec
}

func (info *Info) use(name string) {
	if name == "" {
		info.block = nil
		return
	}
	sec, found := shared.SectionByName(name)
	if !found {
		info.log.Printf("Warning: line %d: unknown block %v, back to default routing", info.pos, name)
		info.block = nil
		return
	}
	info.block = &sec
}

// registerLabel binds the label of rec, if any, both to its symbol address
// and to the DEFAULT counter EQU expressions see. The first definition of a
// name wins.
func (info *Info) registerLabel(rec Record) {
	name := rec.Line.Label
	if name == "" || name == SelfRef {
		return
	}
	where, ok := rec.SymbolAddress()
	if !ok {
		return
	}
	if _, dup := info.symbols[name]; dup {
		info.log.Printf("Warning: line %d: %v redefined, keeping first definition", info.pos, name)
		return
	}
	info.symbols[name] = where
	info.refs[name], _ = rec.RefAddress()
}

func (info *Info) Mode() shared.Mode {
	return info.mode
}

func (info *Info) Records() []Record {
	return info.records
}

func (info *Info) Lines() []InLine {
	return info.lines
}

func (info *Info) Literals() []Literal {
	return info.literals.literals
}

func (info *Info) LookupSymbol(name string) (shared.Address, bool) {
	addr, found := info.symbols[name]
	return addr, found
}

// GetSymbols lists the defined names in sorted order.
func (info *Info) GetSymbols() []string {
	syms := lo.Keys(info.symbols)
	slices.Sort(syms)
	return syms
}
