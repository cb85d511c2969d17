package assembler

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTables(t *testing.T) {
	info := assemble(t, "START 0000", "LDA FIVE", "FIVE WORD 5", "* =C'EOF'", "END")

	var buf bytes.Buffer
	require.NoError(t, info.WriteListing(&buf))
	require.Equal(t, "0000\t&\tSTART\t0000\n"+
		"0003\t&\tLDA\tFIVE\n"+
		"0006\tFIVE\tWORD\t5\n"+
		"0009\t*\t=C'EOF'\t&\n"+
		"\t&\tEND\t&\n", buf.String())

	buf.Reset()
	require.NoError(t, info.WriteSymbols(&buf))
	require.Equal(t, "FIVE\t0003\n", buf.String())

	buf.Reset()
	require.NoError(t, info.WriteLiterals(&buf))
	require.Equal(t, "=C'EOF'\t0006\n", buf.String())

	buf.Reset()
	require.NoError(t, info.WriteIntermediate(&buf))
	require.Equal(t, "&\tSTART\t0000\n"+
		"&\tLDA\tFIVE\n"+
		"FIVE\tWORD\t5\n"+
		"*\t=C'EOF'\t&\n"+
		"&\tEND\t&\n", buf.String())
}

func TestPlaceholderLabelsAreNotEmitted(t *testing.T) {
	info := assemble(t, "START 0", "LDA X", "HERE BASE NEXT", "NEXT WORD 1")
	rows := info.SymbolTable()
	require.Len(t, rows, 1)
	require.Equal(t, "NEXT", rows[0].Label)
	_, found := info.LookupSymbol("HERE")
	require.False(t, found)
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteErrorsPropagate(t *testing.T) {
	info := assemble(t, "START 0", "A LDA X")
	require.ErrorIs(t, info.WriteListing(failingWriter{}), errWrite)
	require.ErrorIs(t, info.WriteSymbols(failingWriter{}), errWrite)
}
