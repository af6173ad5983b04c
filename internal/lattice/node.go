package lattice

import "fmt"

// Node is a candidate morpheme occupying [Begin, End) bytes of the input.
type Node struct {
	Begin   int
	End     int
	LeftID  int16
	RightID int16
	Cost    int16

	// TotalCost is the cost of the best path from BOS through this node.
	TotalCost int64

	wordID    uint32
	hasWordID bool
	connected bool
	bestPrev  *Node
}

// NewNode returns a node for a dictionary word.
func NewNode(leftID, rightID, cost int16, wordID uint32) *Node {
	return &Node{LeftID: leftID, RightID: rightID, Cost: cost, wordID: wordID, hasWordID: true}
}

func newBoundaryNode() *Node {
	return &Node{}
}

// WordID returns the dictionary word id of the node. Boundary nodes have none.
func (n *Node) WordID() (uint32, bool) { return n.wordID, n.hasWordID }

// Connected reports whether the node is reachable from BOS.
func (n *Node) Connected() bool { return n.connected }

func (n *Node) String() string {
	id := "-"
	if n.hasWordID {
		id = fmt.Sprint(n.wordID)
	}
	return fmt.Sprintf("%d %d %s %d %d %d", n.Begin, n.End, id, n.LeftID, n.RightID, n.Cost)
}
