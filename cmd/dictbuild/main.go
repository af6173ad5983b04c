package main

import (
	"flag"
	"io"
	"log"
	"os"

	"wakachi/internal/dic"
)

func main() {
	var (
		matrixPath  = flag.String("matrix", "matrix.def", "connection cost matrix")
		outPath     = flag.String("o", "system.dic", "output dictionary")
		description = flag.String("desc", "", "dictionary description")
	)
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalf("usage: dictbuild [-matrix matrix.def] [-o system.dic] [-desc text] lexicon.csv...")
	}

	b := dic.NewBuilder(*description)
	if err := readInto(*matrixPath, b, dic.ReadMatrix); err != nil {
		log.Fatalf("%s: %v", *matrixPath, err)
	}
	for _, path := range flag.Args() {
		if err := readInto(path, b, dic.ReadLexicon); err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}

	data, err := b.Bytes()
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	d, err := dic.Load(data)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}
	left, right := d.Grammar.MatrixSize()
	log.Printf("wrote %s (%d bytes): %d words, %d POS, %dx%d matrix",
		*outPath, len(data), d.Lexicon.Size(), d.Grammar.POSCount(), left, right)
}

func readInto(path string, b *dic.Builder, read func(io.Reader, *dic.Builder) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return read(f, b)
}
