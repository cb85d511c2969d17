package main

import (
	"path/filepath"
)

// Config collects the output locations and switches of a run.
type Config struct {
	OutDir       string
	Listing      string
	Symtab       string
	Littab       string
	Intermediate string
	Verbose      bool
	Dump         bool
}

func DefaultConfig() Config {
	return Config{
		OutDir:       ".",
		Listing:      "out_pass1.txt",
		Symtab:       "symtab.txt",
		Littab:       "littab.txt",
		Intermediate: "intermediate.txt",
	}
}

func (c Config) path(name string) string {
	return filepath.Join(c.OutDir, name)
}
