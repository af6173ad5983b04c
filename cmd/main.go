package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"wakachi/internal/tokenizer"
	"wakachi/pkg/options"
)

func main() {
	var (
		modeFlag = flag.String("m", getenv("DEFAULT_MODE", "C"), "split mode: A, B or C")
		dictPath = flag.String("l", getenv("DICTIONARY_PATH", "system.dic"), "dictionary file")
		outPath  = flag.String("o", "", "output file (default stdout)")
		printAll = flag.Bool("a", false, "print all fields")
		wakati   = flag.Bool("w", false, "print space-separated surfaces only")
		debug    = flag.Bool("d", false, "dump the lattice to stderr")
		useMmap  = flag.Bool("mmap", true, "memory-map the dictionary")
	)
	flag.Parse()

	mode, err := tokenizer.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []options.Options{options.WithMode(mode.String())}
	if !*useMmap {
		opts = append(opts, options.WithoutMmap())
	}
	tok, err := tokenizer.Open(*dictPath, opts...)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	defer tok.Close()

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("output: %v", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	p := printer{w: w, all: *printAll, wakati: *wakati}
	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		if err := tokenizeFile(tok, name, mode, *debug, p); err != nil {
			w.Flush()
			log.Fatalf("%s: %v", name, err)
		}
	}
}

func tokenizeFile(tok *tokenizer.Tokenizer, name string, mode tokenizer.Mode, debug bool, p printer) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		ms, err := tok.Tokenize(line, mode, debug)
		if err != nil {
			return fmt.Errorf("%q: %w", line, err)
		}
		p.print(ms)
	}
	return s.Err()
}

type printer struct {
	w      *bufio.Writer
	all    bool
	wakati bool
}

func (p printer) print(ms []tokenizer.Morpheme) {
	if p.wakati {
		for i, m := range ms {
			if i > 0 {
				p.w.WriteByte(' ')
			}
			p.w.WriteString(m.Surface)
		}
		p.w.WriteByte('\n')
		return
	}
	for _, m := range ms {
		fmt.Fprintf(p.w, "%s\t%s\t%s", m.Surface, strings.Join(m.PartOfSpeech, ","), m.NormalizedForm)
		if p.all {
			fmt.Fprintf(p.w, "\t%s\t%s\t%d\t[%d,%d)", m.DictionaryForm, m.ReadingForm, m.WordID, m.Begin, m.End)
		}
		p.w.WriteByte('\n')
	}
	p.w.WriteString("EOS\n")
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
