package tokenizer

import (
	"fmt"
	"io"
	"os"

	"wakachi/internal/dic"
	"wakachi/internal/lattice"
	"wakachi/pkg/options"
)

// Grammar is the part of the dictionary grammar the tokenizer reads.
type Grammar interface {
	ConnectCost(prevRight, nextLeft int16) (int16, error)
	PartOfSpeech(id int16) ([]string, error)
}

// Lexicon is the part of the dictionary lexicon the tokenizer reads.
type Lexicon interface {
	Lookup(text []byte, start int) ([]dic.Entry, error)
	WordParam(wordID uint32) (left, right, cost int16, err error)
	WordInfo(wordID uint32) (dic.WordInfo, error)
}

// Tokenizer segments text against a read-only dictionary. It holds no
// per-call state and may be shared between goroutines.
type Tokenizer struct {
	grammar Grammar
	lexicon Lexicon
	config  options.TokenizerOptions
	dict    *dic.Dictionary
}

// New returns a Tokenizer over the given grammar and lexicon.
func New(g Grammar, l Lexicon, opts ...options.Options) *Tokenizer {
	return &Tokenizer{grammar: g, lexicon: l, config: options.Resolve(opts...)}
}

// Load returns a Tokenizer over the dictionary held in b. b must not be
// modified while the Tokenizer is in use.
func Load(b []byte, opts ...options.Options) (*Tokenizer, error) {
	d, err := dic.Load(b)
	if err != nil {
		return nil, err
	}
	return fromDictionary(d, opts), nil
}

// Open loads the dictionary file at path, memory-mapped unless disabled
// with options.WithoutMmap.
func Open(path string, opts ...options.Options) (*Tokenizer, error) {
	conf := options.Resolve(opts...)
	if conf.UseMmap {
		d, err := dic.Open(path)
		if err != nil {
			return nil, err
		}
		return fromDictionary(d, opts), nil
	}
	b, err := dic.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(b, opts...)
}

func fromDictionary(d *dic.Dictionary, opts []options.Options) *Tokenizer {
	t := New(d.Grammar, d.Lexicon, opts...)
	t.dict = d
	return t
}

// Dictionary returns the loaded dictionary, or nil for a Tokenizer built
// with New.
func (t *Tokenizer) Dictionary() *dic.Dictionary { return t.dict }

// Close releases the dictionary mapping, if any. The Tokenizer must not be
// used afterwards.
func (t *Tokenizer) Close() error {
	if t.dict == nil {
		return nil
	}
	return t.dict.Close()
}

// DefaultMode returns the mode configured with options.WithMode.
func (t *Tokenizer) DefaultMode() (Mode, error) {
	return ParseMode(t.config.Mode)
}

// Tokenize breaks input into morphemes at the granularity of mode. When
// debug is set the lattice is dumped to the configured debug output.
func (t *Tokenizer) Tokenize(input string, mode Mode, debug bool) ([]Morpheme, error) {
	units, err := t.resolve(input, mode, debug)
	if err != nil {
		return nil, err
	}
	out := make([]Morpheme, len(units))
	for i, u := range units {
		if out[i], err = t.morpheme(input, u); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// WordIDs is Tokenize without morpheme construction.
func (t *Tokenizer) WordIDs(input string, mode Mode, debug bool) ([]uint32, error) {
	units, err := t.resolve(input, mode, debug)
	if err != nil {
		return nil, err
	}
	ids := make([]uint32, len(units))
	for i, u := range units {
		ids[i] = u.wordID
	}
	return ids, nil
}

func (t *Tokenizer) resolve(input string, mode Mode, debug bool) ([]unit, error) {
	if mode < ModeA || mode > ModeC {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
	}
	lat, err := t.buildLattice([]byte(input))
	if err != nil {
		return nil, err
	}
	if debug || t.config.Debug {
		dumpLattice(t.debugOutput(), t.grammar, lat)
	}
	path, err := lat.BestPath()
	if err != nil {
		return nil, err
	}
	return t.split(path, mode)
}

func (t *Tokenizer) debugOutput() io.Writer {
	if t.config.DebugOutput != nil {
		return t.config.DebugOutput
	}
	return os.Stderr
}

// buildLattice inserts every dictionary word found at each character start.
func (t *Tokenizer) buildLattice(text []byte) (*lattice.Lattice, error) {
	lat := lattice.New(t.grammar, len(text))
	for i, b := range text {
		// UTF-8 continuation byte
		if b&0xC0 == 0x80 {
			continue
		}
		entries, err := t.lexicon.Lookup(text, i)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			left, right, cost, err := t.lexicon.WordParam(e.WordID)
			if err != nil {
				return nil, err
			}
			if err := lat.Insert(i, e.End, lattice.NewNode(left, right, cost, e.WordID)); err != nil {
				return nil, err
			}
		}
	}
	if err := lat.ConnectEOS(); err != nil {
		return nil, err
	}
	return lat, nil
}

// split rewrites the best path for mode. Words whose split for mode has
// fewer than two entries are kept whole.
func (t *Tokenizer) split(path []*lattice.Node, mode Mode) ([]unit, error) {
	units := make([]unit, 0, len(path))
	for _, n := range path {
		id, ok := n.WordID()
		if !ok {
			return nil, fmt.Errorf("%w: node [%d, %d)", ErrMissingWordID, n.Begin, n.End)
		}
		if mode == ModeC {
			units = append(units, unit{wordID: id, begin: n.Begin, end: n.End})
			continue
		}
		wi, err := t.lexicon.WordInfo(id)
		if err != nil {
			return nil, err
		}
		ids := selectSplit(wi, mode)
		if len(ids) <= 1 {
			units = append(units, unit{wordID: id, begin: n.Begin, end: n.End})
			continue
		}
		// Constituents take their headword length from the parent span;
		// the last one absorbs any remainder.
		begin := n.Begin
		for i, sub := range ids {
			swi, err := t.lexicon.WordInfo(sub)
			if err != nil {
				return nil, fmt.Errorf("%w: split of word %d: %w", ErrMissingWordID, id, err)
			}
			end := n.End
			if i < len(ids)-1 {
				end = min(begin+swi.HeadwordLength, n.End)
			}
			units = append(units, unit{wordID: sub, begin: begin, end: end})
			begin = end
		}
	}
	return units, nil
}
