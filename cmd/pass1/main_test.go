package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sicpass/shared"
)

func writeSource(t *testing.T, dir, src string) string {
	t.Helper()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func Test_run(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "START 0000\nLDA FIVE ; load\nFIVE WORD 5\n")
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(dir, "out")

	var stderr bytes.Buffer
	require.NoError(t, run(cfg, source, &stderr))
	require.Empty(t, stderr.String())

	tests := []struct {
		file string
		want string
	}{
		{cfg.Listing, "0000\t&\tSTART\t0000\n0003\t&\tLDA\tFIVE\n0006\tFIVE\tWORD\t5\n"},
		{cfg.Symtab, "FIVE\t0003\n"},
		{cfg.Littab, ""},
		{cfg.Intermediate, "&\tSTART\t0000\n&\tLDA\tFIVE\nFIVE\tWORD\t5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := os.ReadFile(cfg.path(tt.file))
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func Test_runMissingSource(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(dir, "out")

	err := run(cfg, filepath.Join(dir, "missing.txt"), &bytes.Buffer{})
	require.True(t, errors.Is(err, shared.ErrNoSource))
	_, statErr := os.Stat(cfg.OutDir)
	require.True(t, errors.Is(statErr, os.ErrNotExist), "nothing may be written")
}

func Test_runVerbose(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "START 0\nFROB X\nE EQU NOPE+1\n")
	cfg := DefaultConfig()
	cfg.OutDir = dir
	cfg.Verbose = true

	var stderr bytes.Buffer
	require.NoError(t, run(cfg, source, &stderr))
	require.Contains(t, stderr.String(), "pass1: Warning: line 1: unknown operation FROB")
	require.Contains(t, stderr.String(), `unresolved term "NOPE"`)
}

func TestRootCmdFlags(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "START 0\nCLEAR A\n")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--out-dir", dir, "--listing", "list.txt", source})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(filepath.Join(dir, "list.txt"))
	require.NoError(t, err)
	require.Equal(t, "0000\t&\tSTART\t0\n0002\t&\tCLEAR\tA\n", string(got))
}
