package dic

import "encoding/binary"

const wordParamSize = 6

// Entry is one lexicon match: a word starting at the queried offset and
// ending at End.
type Entry struct {
	WordID uint32
	End    int
}

// Lexicon maps surface forms to word ids and holds per-word parameters and
// records. Sections other than the trie are views into the dictionary buffer.
type Lexicon struct {
	trie        *trie
	wordIDTable []byte
	params      []byte
	infoOffsets []byte
	infos       []byte
	size        int
}

// NewLexicon decodes the lexicon region starting at offset.
func NewLexicon(buf []byte, offset int) (*Lexicon, error) {
	r := newReader(buf, offset, "lexicon")
	t, err := readTrie(r)
	if err != nil {
		return nil, err
	}

	tableSize, err := r.u32()
	if err != nil {
		return nil, err
	}
	table, err := r.bytes(int(tableSize))
	if err != nil {
		return nil, err
	}

	paramCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	params, err := r.bytes(int(paramCount) * wordParamSize)
	if err != nil {
		return nil, err
	}

	infoCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	if infoCount != paramCount {
		return nil, formatErrorf("lexicon", r.off-4, "%d word infos for %d word params", infoCount, paramCount)
	}
	offsets, err := r.bytes(int(infoCount) * 4)
	if err != nil {
		return nil, err
	}
	infoSize, err := r.u32()
	if err != nil {
		return nil, err
	}
	infos, err := r.bytes(int(infoSize))
	if err != nil {
		return nil, err
	}

	return &Lexicon{
		trie:        t,
		wordIDTable: table,
		params:      params,
		infoOffsets: offsets,
		infos:       infos,
		size:        int(paramCount),
	}, nil
}

// Size returns the number of words.
func (l *Lexicon) Size() int { return l.size }

// Lookup returns every word whose surface starts at text[start:], ordered by
// end offset and then by table order.
func (l *Lexicon) Lookup(text []byte, start int) ([]Entry, error) {
	if start < 0 || start > len(text) {
		return nil, lookupErrorf("offset %d outside text of %d bytes", start, len(text))
	}
	var out []Entry
	err := l.trie.prefixes(text, start, func(end int, value int32) error {
		ids, err := l.wordIDs(value)
		if err != nil {
			return err
		}
		for _, id := range ids {
			out = append(out, Entry{WordID: id, End: end})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Lexicon) wordIDs(value int32) ([]uint32, error) {
	r := newReader(l.wordIDTable, int(value), "word id table")
	n, err := r.u8()
	if err != nil {
		return nil, lookupErrorf("word id table offset %d: %v", value, err)
	}
	ids := make([]uint32, n)
	for i := range ids {
		if ids[i], err = r.u32(); err != nil {
			return nil, lookupErrorf("word id table offset %d: %v", value, err)
		}
		if int(ids[i]) >= l.size {
			return nil, lookupErrorf("word id %d outside lexicon of %d", ids[i], l.size)
		}
	}
	return ids, nil
}

// WordParam returns the left id, right id and cost of a word.
func (l *Lexicon) WordParam(wordID uint32) (left, right, cost int16, err error) {
	if int(wordID) >= l.size {
		return 0, 0, 0, lookupErrorf("word id %d outside lexicon of %d", wordID, l.size)
	}
	b := l.params[int(wordID)*wordParamSize:]
	left = int16(binary.LittleEndian.Uint16(b))
	right = int16(binary.LittleEndian.Uint16(b[2:]))
	cost = int16(binary.LittleEndian.Uint16(b[4:]))
	return left, right, cost, nil
}

// WordInfo decodes the record of a word.
func (l *Lexicon) WordInfo(wordID uint32) (WordInfo, error) {
	if int(wordID) >= l.size {
		return WordInfo{}, lookupErrorf("word id %d outside lexicon of %d", wordID, l.size)
	}
	off := binary.LittleEndian.Uint32(l.infoOffsets[int(wordID)*4:])
	wi, err := readWordInfo(newReader(l.infos, int(off), "word info"))
	if err != nil {
		return WordInfo{}, lookupErrorf("word %d: %v", wordID, err)
	}
	return wi, nil
}
