package dic

// POSDepth is the number of fields in a part-of-speech tuple.
const POSDepth = 6

// Grammar holds the part-of-speech table and the connection-cost matrix.
// The matrix is a view into the dictionary buffer and is never copied.
type Grammar struct {
	pos       [][]string
	leftSize  int
	rightSize int
	matrix    []byte

	// StorageSize is the number of bytes the grammar occupies in the buffer.
	StorageSize int
}

// NewGrammar decodes the grammar region starting at offset.
func NewGrammar(buf []byte, offset int) (*Grammar, error) {
	r := newReader(buf, offset, "grammar")
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	pos := make([][]string, n)
	for i := range pos {
		fields := make([]string, POSDepth)
		for j := range fields {
			if fields[j], err = r.str(); err != nil {
				return nil, err
			}
		}
		pos[i] = fields
	}

	left, err := r.i16()
	if err != nil {
		return nil, err
	}
	right, err := r.i16()
	if err != nil {
		return nil, err
	}
	if left < 1 || right < 1 {
		return nil, formatErrorf("grammar", r.off-4, "connection matrix is %dx%d", left, right)
	}
	matrix, err := r.bytes(2 * int(left) * int(right))
	if err != nil {
		return nil, err
	}

	return &Grammar{
		pos:         pos,
		leftSize:    int(left),
		rightSize:   int(right),
		matrix:      matrix,
		StorageSize: r.off - offset,
	}, nil
}

// ConnectCost returns the cost of placing a node whose right id is prevRight
// directly before a node whose left id is nextLeft.
func (g *Grammar) ConnectCost(prevRight, nextLeft int16) (int16, error) {
	l, r := int(prevRight), int(nextLeft)
	if l < 0 || l >= g.leftSize || r < 0 || r >= g.rightSize {
		return 0, lookupErrorf("connection (%d, %d) outside %dx%d matrix", prevRight, nextLeft, g.leftSize, g.rightSize)
	}
	i := 2 * (l + g.leftSize*r)
	return int16(uint16(g.matrix[i]) | uint16(g.matrix[i+1])<<8), nil
}

// PartOfSpeech returns the POS fields for id.
func (g *Grammar) PartOfSpeech(id int16) ([]string, error) {
	if id < 0 || int(id) >= len(g.pos) {
		return nil, lookupErrorf("part of speech %d outside table of %d", id, len(g.pos))
	}
	return g.pos[id], nil
}

// POSCount returns the number of POS entries.
func (g *Grammar) POSCount() int { return len(g.pos) }

// MatrixSize returns the number of left and right connection ids.
func (g *Grammar) MatrixSize() (left, right int) { return g.leftSize, g.rightSize }
