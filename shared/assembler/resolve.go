package assembler

import (
	"math"
	"strconv"
	"strings"

	"sicpass/shared"
)

// resolveExpr evaluates the operand of an EQU using only what has been
// defined so far. here is the current location counter. Unknown labels and
// garbage evaluate to zero; forward references are not supported.
func (info *Info) resolveExpr(expr string, here shared.Address) shared.Address {
	if expr == SelfRef {
		return here
	}
	for _, op := range []string{"-", "+"} {
		if !strings.Contains(expr, op) {
			continue
		}
		terms := strings.Split(expr, op)
		if len(terms) != 2 {
			info.log.Printf("Warning: line %d: cannot evaluate %q", info.pos, expr)
			return 0
		}
		a := info.resolveTerm(strings.TrimSpace(terms[0]), here)
		b := info.resolveTerm(strings.TrimSpace(terms[1]), here)
		if op == "-" {
			return saturatingSub(a, b)
		}
		return saturatingAdd(a, b)
	}
	return info.resolveTerm(expr, here)
}

func (info *Info) resolveTerm(term string, here shared.Address) shared.Address {
	if term == SelfRef {
		return here
	}
	if addr, found := info.refs[term]; found {
		return addr
	}
	n, err := strconv.ParseUint(term, 10, 64)
	if err != nil {
		info.log.Printf("Warning: line %d: unresolved term %q taken as 0", info.pos, term)
		return 0
	}
	return n
}

func saturatingSub(a, b shared.Address) shared.Address {
	if b > a {
		return 0
	}
	return a - b
}

func saturatingAdd(a, b shared.Address) shared.Address {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
