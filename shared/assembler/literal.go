package assembler

import (
	"sicpass/shared"
)

type Literal struct {
	Text    string
	Index   int // line the literal was first seen on
	Size    shared.Address
	Address shared.Address
}

// literalPool keeps literals in the order they were seen. Addresses are
// handed out at first sighting; LTORG and END do not flush anything.
type literalPool struct {
	literals []Literal
	seen     map[int]bool
}

func (pool *literalPool) reset() {
	pool.literals = nil
	pool.seen = make(map[int]bool)
}

// record adds the literal of line index unless that line already has one.
func (pool *literalPool) record(text string, index int, size, addr shared.Address) bool {
	if pool.seen[index] {
		return false
	}
	pool.seen[index] = true
	pool.literals = append(pool.literals, Literal{
		Text:    text,
		Index:   index,
		Size:    size,
		Address: addr,
	})
	return true
}
