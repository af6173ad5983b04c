package dic

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Dictionary owns the raw dictionary bytes and the views decoded from them.
// Grammar and Lexicon borrow from the buffer, so it must stay mapped until
// Close is called.
type Dictionary struct {
	Header  *Header
	Grammar *Grammar
	Lexicon *Lexicon

	mm mmap.MMap
}

// Load decodes a dictionary held in buf. buf is not copied.
func Load(buf []byte) (*Dictionary, error) {
	h, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	offset := HeaderSize

	g, err := NewGrammar(buf, offset)
	if err != nil {
		return nil, err
	}
	offset += g.StorageSize

	l, err := NewLexicon(buf, offset)
	if err != nil {
		return nil, err
	}
	return &Dictionary{Header: h, Grammar: g, Lexicon: l}, nil
}

// Open memory-maps the dictionary file at path read-only and decodes it.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if st.Size() == 0 {
		// mmap rejects empty files.
		return nil, formatErrorf("header", 0, "dictionary %s is empty", path)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %w", ErrIO, path, err)
	}
	d, err := Load(mm)
	if err != nil {
		_ = mm.Unmap()
		return nil, err
	}
	d.mm = mm
	return d, nil
}

// ReadFile returns the bytes of the dictionary at path.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return b, nil
}

// Close releases the mapping created by Open. It is a no-op for
// dictionaries created with Load.
func (d *Dictionary) Close() error {
	if d.mm == nil {
		return nil
	}
	err := d.mm.Unmap()
	d.mm = nil
	return err
}
