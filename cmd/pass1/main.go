package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"sicpass/shared/assembler"
)

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "pass1 sourceFile",
		Short: "First pass of the SIC/XE assembler",
		Long: `Pass1 assigns addresses to every line of a SIC/XE source file and
writes the pass-1 listing, the symbol table, the literal table and the
normalized intermediate file, all tab separated.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args[0], cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutDir, "out-dir", "o", cfg.OutDir, "directory the tables are written to")
	flags.StringVar(&cfg.Listing, "listing", cfg.Listing, "pass-1 listing file name")
	flags.StringVar(&cfg.Symtab, "symtab", cfg.Symtab, "symbol table file name")
	flags.StringVar(&cfg.Littab, "littab", cfg.Littab, "literal table file name")
	flags.StringVar(&cfg.Intermediate, "intermediate", cfg.Intermediate, "intermediate file name")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "report values that were defaulted")
	flags.BoolVar(&cfg.Dump, "dump", false, "dump the per-line records to stderr")
	return cmd
}

func run(cfg Config, source string, stderr io.Writer) error {
	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(stderr, "pass1: ", 0)
	}
	info, err := assembler.AssembleFile(source, logger)
	if err != nil {
		return err
	}

	if cfg.Dump {
		pp.Fprintln(stderr, info.Mode().String(), info.Records())
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{cfg.Intermediate, info.WriteIntermediate},
		{cfg.Listing, info.WriteListing},
		{cfg.Symtab, info.WriteSymbols},
		{cfg.Littab, info.WriteLiterals},
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	for _, out := range outputs {
		if err := writeFile(cfg.path(out.name), out.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Fatalf("error: %v", err)
	}
}
