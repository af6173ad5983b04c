package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPath reports that EOS cannot be reached from BOS.
	ErrNoPath = errors.New("lattice: no path from BOS to EOS")
	// ErrMissingWordID reports a path node without a dictionary word id.
	ErrMissingWordID = errors.New("lattice: node has no word id")
)

// Grammar supplies connection costs between adjacent nodes.
type Grammar interface {
	ConnectCost(prevRight, nextLeft int16) (int16, error)
}

// Lattice collects candidate nodes indexed by end offset and keeps, for each
// node, the cheapest connection back to BOS. It is built left to right and
// belongs to a single tokenize call.
type Lattice struct {
	grammar  Grammar
	size     int
	endLists [][]*Node
	eos      *Node
}

// New returns a lattice for an input of size bytes holding only BOS.
func New(g Grammar, size int) *Lattice {
	bos := newBoundaryNode()
	bos.connected = true
	endLists := make([][]*Node, size+1)
	endLists[0] = []*Node{bos}
	return &Lattice{grammar: g, size: size, endLists: endLists}
}

// Size returns the input length in bytes.
func (l *Lattice) Size() int { return l.size }

// EndList returns the nodes ending at offset i.
func (l *Lattice) EndList(i int) []*Node {
	if i < 0 || i >= len(l.endLists) {
		return nil
	}
	return l.endLists[i]
}

// EOS returns the end-of-sentence node, or nil before ConnectEOS.
func (l *Lattice) EOS() *Node { return l.eos }

// Insert adds n spanning [begin, end) and links it to its cheapest
// predecessor. Among equal-cost predecessors the earliest inserted wins.
func (l *Lattice) Insert(begin, end int, n *Node) error {
	if begin < 0 || end <= begin || end > l.size {
		return fmt.Errorf("lattice: span [%d, %d) outside input of %d bytes", begin, end, l.size)
	}
	n.Begin, n.End = begin, end
	if err := l.connect(n); err != nil {
		return err
	}
	l.endLists[end] = append(l.endLists[end], n)
	return nil
}

// ConnectEOS links the end-of-sentence node after the last byte.
func (l *Lattice) ConnectEOS() error {
	eos := newBoundaryNode()
	eos.Begin, eos.End = l.size, l.size
	if err := l.connect(eos); err != nil {
		return err
	}
	l.eos = eos
	return nil
}

func (l *Lattice) connect(n *Node) error {
	var (
		best     *Node
		bestCost int64
	)
	for _, prev := range l.endLists[n.Begin] {
		if !prev.connected {
			continue
		}
		c, err := l.grammar.ConnectCost(prev.RightID, n.LeftID)
		if err != nil {
			return err
		}
		total := prev.TotalCost + int64(c)
		if best == nil || total < bestCost {
			best, bestCost = prev, total
		}
	}
	n.connected = best != nil
	n.bestPrev = best
	if best != nil {
		n.TotalCost = bestCost + int64(n.Cost)
	}
	return nil
}

// BestPath returns the least-cost nodes between BOS and EOS, in text order.
// BOS and EOS are not included.
func (l *Lattice) BestPath() ([]*Node, error) {
	if l.eos == nil || !l.eos.connected {
		return nil, ErrNoPath
	}
	var path []*Node
	for n := l.eos.bestPrev; n != nil && n.bestPrev != nil; n = n.bestPrev {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
