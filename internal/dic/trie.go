package dic

import (
	"bytes"

	"github.com/vcaesar/cedar"
)

// trie maps surface bytes to offsets in the word id table. It is stored as
// a gob-encoded double-array and decoded into its own arrays at load time;
// it is the only lexicon section that is not a view into the buffer.
type trie struct {
	da *cedar.Cedar
}

func readTrie(r *reader) (*trie, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	start := r.off
	blob, err := r.bytes(int(n))
	if err != nil {
		return nil, err
	}
	da := cedar.New()
	if err := da.Load(bytes.NewReader(blob), "gob"); err != nil {
		return nil, formatErrorf(r.section, start, "trie: %v", err)
	}
	return &trie{da: da}, nil
}

func writeTrie(buf *bytes.Buffer, da *cedar.Cedar) error {
	var blob bytes.Buffer
	if err := da.Save(&blob, "gob"); err != nil {
		return err
	}
	putU32(buf, uint32(blob.Len()))
	buf.Write(blob.Bytes())
	return nil
}

// prefixes calls fn for every key that is a prefix of key[start:], shortest
// first, with the end offset of the match and the stored value offset.
func (t *trie) prefixes(key []byte, start int, fn func(end int, value int32) error) error {
	id := 0
	for i := start; i < len(key); i++ {
		// Label 0 is the double-array terminator, never part of a surface.
		if key[i] == 0 {
			return nil
		}
		next, err := t.da.Jump(key[i:i+1], id)
		if err != nil {
			return nil
		}
		id = next
		if v, err := t.da.Value(id); err == nil {
			if err := fn(i+1, int32(v)); err != nil {
				return err
			}
		}
	}
	return nil
}
