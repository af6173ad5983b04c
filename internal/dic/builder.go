package dic

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vcaesar/cedar"
)

// WordEntry is a lexicon row handed to the Builder.
type WordEntry struct {
	Surface        string
	LeftID         int16
	RightID        int16
	Cost           int16
	POS            []string
	NormalizedForm string
	ReadingForm    string
	// DictionaryFormWordID is -1 when the word is its own dictionary form.
	DictionaryFormWordID int32
	AUnitSplit           []uint32
	BUnitSplit           []uint32
	WordStructure        []uint32
}

// Builder assembles a dictionary in memory and serializes it in the format
// read by Load.
type Builder struct {
	Description string
	CreateTime  time.Time

	pos       [][]string
	posIndex  map[string]int16
	leftSize  int
	rightSize int
	matrix    []int16
	words     []WordEntry
}

// NewBuilder returns a Builder with a 1x1 zero connection matrix.
func NewBuilder(description string) *Builder {
	return &Builder{
		Description: description,
		posIndex:    make(map[string]int16),
		leftSize:    1,
		rightSize:   1,
		matrix:      []int16{0},
	}
}

// SetMatrixSize resets the connection matrix to left x right zero costs.
func (b *Builder) SetMatrixSize(left, right int) error {
	if left < 1 || right < 1 || left > math.MaxInt16 || right > math.MaxInt16 {
		return fmt.Errorf("invalid matrix size %dx%d", left, right)
	}
	b.leftSize, b.rightSize = left, right
	b.matrix = make([]int16, left*right)
	return nil
}

// SetConnectCost sets the cost of prevRight followed by nextLeft.
func (b *Builder) SetConnectCost(prevRight, nextLeft int, cost int16) error {
	if prevRight < 0 || prevRight >= b.leftSize || nextLeft < 0 || nextLeft >= b.rightSize {
		return fmt.Errorf("connection (%d, %d) outside %dx%d matrix", prevRight, nextLeft, b.leftSize, b.rightSize)
	}
	b.matrix[prevRight+b.leftSize*nextLeft] = cost
	return nil
}

// AddPOS registers a part of speech and returns its id. Registering the same
// fields twice returns the same id.
func (b *Builder) AddPOS(fields []string) (int16, error) {
	if len(fields) != POSDepth {
		return 0, fmt.Errorf("part of speech needs %d fields, got %d", POSDepth, len(fields))
	}
	key := strings.Join(fields, "\x00")
	if id, ok := b.posIndex[key]; ok {
		return id, nil
	}
	if len(b.pos) >= math.MaxInt16 {
		return 0, fmt.Errorf("too many parts of speech")
	}
	id := int16(len(b.pos))
	b.pos = append(b.pos, append([]string(nil), fields...))
	b.posIndex[key] = id
	return id, nil
}

// AddWord appends a word and returns its id. Word ids are assigned in the
// order words are added.
func (b *Builder) AddWord(w WordEntry) (uint32, error) {
	if w.Surface == "" {
		return 0, fmt.Errorf("word %d has an empty surface", len(b.words))
	}
	if len(w.Surface) > math.MaxUint16 {
		return 0, fmt.Errorf("word %q is too long", w.Surface)
	}
	if strings.IndexByte(w.Surface, 0) >= 0 {
		return 0, fmt.Errorf("word %q contains a NUL byte", w.Surface)
	}
	if int(w.LeftID) >= b.rightSize || int(w.RightID) >= b.leftSize || w.LeftID < 0 || w.RightID < 0 {
		return 0, fmt.Errorf("word %q ids (%d, %d) outside %dx%d matrix", w.Surface, w.LeftID, w.RightID, b.leftSize, b.rightSize)
	}
	if len(w.POS) == 0 {
		w.POS = []string{"*", "*", "*", "*", "*", "*"}
	}
	if _, err := b.AddPOS(w.POS); err != nil {
		return 0, err
	}
	for _, l := range [][]uint32{w.AUnitSplit, w.BUnitSplit, w.WordStructure} {
		if len(l) > math.MaxUint8 {
			return 0, fmt.Errorf("word %q has a split of %d words", w.Surface, len(l))
		}
	}
	b.words = append(b.words, w)
	return uint32(len(b.words) - 1), nil
}

// Bytes serializes the dictionary.
func (b *Builder) Bytes() ([]byte, error) {
	for i, w := range b.words {
		for _, l := range [][]uint32{w.AUnitSplit, w.BUnitSplit, w.WordStructure} {
			for _, id := range l {
				if int(id) >= len(b.words) {
					return nil, fmt.Errorf("word %d (%q) refers to unknown word %d", i, w.Surface, id)
				}
			}
		}
		if w.DictionaryFormWordID >= int32(len(b.words)) {
			return nil, fmt.Errorf("word %d (%q) has unknown dictionary form %d", i, w.Surface, w.DictionaryFormWordID)
		}
	}

	var buf bytes.Buffer
	b.writeHeader(&buf)
	b.writeGrammar(&buf)
	if err := b.writeLexicon(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Builder) writeHeader(buf *bytes.Buffer) {
	created := b.CreateTime
	if created.IsZero() {
		created = time.Now()
	}
	putU64(buf, SystemDictVersion)
	putU64(buf, uint64(created.Unix()))
	desc := make([]byte, descriptionSize)
	copy(desc[:descriptionSize-1], b.Description)
	buf.Write(desc)
}

func (b *Builder) writeGrammar(buf *bytes.Buffer) {
	putU16(buf, uint16(len(b.pos)))
	for _, fields := range b.pos {
		for _, f := range fields {
			putStr(buf, f)
		}
	}
	putU16(buf, uint16(b.leftSize))
	putU16(buf, uint16(b.rightSize))
	for _, c := range b.matrix {
		putU16(buf, uint16(c))
	}
}

func (b *Builder) writeLexicon(buf *bytes.Buffer) error {
	var surfaces []string
	bySurface := map[string][]uint32{}
	for id, w := range b.words {
		if _, ok := bySurface[w.Surface]; !ok {
			surfaces = append(surfaces, w.Surface)
		}
		bySurface[w.Surface] = append(bySurface[w.Surface], uint32(id))
	}

	da := cedar.New()
	var table bytes.Buffer
	for _, surface := range surfaces {
		ids := bySurface[surface]
		if len(ids) > math.MaxUint8 {
			return fmt.Errorf("%d words share the surface %q", len(ids), surface)
		}
		if err := da.Insert([]byte(surface), table.Len()); err != nil {
			return fmt.Errorf("trie insert %q: %w", surface, err)
		}
		table.WriteByte(byte(len(ids)))
		for _, id := range ids {
			putU32(&table, id)
		}
	}
	if err := writeTrie(buf, da); err != nil {
		return err
	}
	putU32(buf, uint32(table.Len()))
	buf.Write(table.Bytes())

	putU32(buf, uint32(len(b.words)))
	for _, w := range b.words {
		putU16(buf, uint16(w.LeftID))
		putU16(buf, uint16(w.RightID))
		putU16(buf, uint16(w.Cost))
	}

	var infos bytes.Buffer
	offsets := make([]uint32, len(b.words))
	for i, w := range b.words {
		offsets[i] = uint32(infos.Len())
		posID := b.posIndex[strings.Join(w.POS, "\x00")]
		normalized := w.NormalizedForm
		if normalized == w.Surface {
			normalized = ""
		}
		reading := w.ReadingForm
		if reading == w.Surface {
			reading = ""
		}
		putStr(&infos, w.Surface)
		putU16(&infos, uint16(len(w.Surface)))
		putU16(&infos, uint16(posID))
		putStr(&infos, normalized)
		putU32(&infos, uint32(w.DictionaryFormWordID))
		putStr(&infos, reading)
		putIDs(&infos, w.AUnitSplit)
		putIDs(&infos, w.BUnitSplit)
		putIDs(&infos, w.WordStructure)
	}
	putU32(buf, uint32(len(b.words)))
	for _, off := range offsets {
		putU32(buf, off)
	}
	putU32(buf, uint32(infos.Len()))
	buf.Write(infos.Bytes())
	return nil
}

func putU16(buf *bytes.Buffer, v uint16) {
	buf.Write(binary.LittleEndian.AppendUint16(nil, v))
}

func putU32(buf *bytes.Buffer, v uint32) {
	buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

func putU64(buf *bytes.Buffer, v uint64) {
	buf.Write(binary.LittleEndian.AppendUint64(nil, v))
}

func putStr(buf *bytes.Buffer, s string) {
	putU16(buf, uint16(len(s)))
	buf.WriteString(s)
}

func putIDs(buf *bytes.Buffer, ids []uint32) {
	buf.WriteByte(byte(len(ids)))
	for _, id := range ids {
		putU32(buf, id)
	}
}
