package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"

	"sicpass/shared/assembler"
)

// Pretty-prints the first pass records of a source file, or of stdin.
func main() {
	var r io.Reader = os.Stdin

	if len(os.Args) == 2 {
		inputFile, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		r = bytes.NewReader(inputFile)
	}

	info := assembler.MakeAssembler()
	info.SetLogger(log.New(os.Stderr, "", 0))
	if err := info.ReadSource(r); err != nil {
		log.Fatal(err)
	}
	info.FirstPass()
	pp.Println(info.Mode().String())
	pp.Println(info.Lines())
	pp.Println(info.Records())
	pp.Println(info.Literals())
}
