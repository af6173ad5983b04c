package tokenizer

import (
	"bufio"
	"fmt"
	"io"

	"wakachi/internal/lattice"
)

// dumpLattice writes, for every node, the cost of reaching it from each
// node that ends where it begins. Write errors are ignored.
func dumpLattice(w io.Writer, g Grammar, lat *lattice.Lattice) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	fmt.Fprintln(bw, "=== Lattice dump:")
	i := 0
	dump := func(r *lattice.Node) {
		fmt.Fprintf(bw, "%d: %s: ", i, r)
		for _, l := range lat.EndList(r.Begin) {
			if !l.Connected() {
				continue
			}
			c, err := g.ConnectCost(l.RightID, r.LeftID)
			if err != nil {
				fmt.Fprint(bw, "? ")
				continue
			}
			fmt.Fprintf(bw, "%d ", l.TotalCost+int64(c))
		}
		fmt.Fprintln(bw)
		i++
	}
	for end := 1; end <= lat.Size(); end++ {
		for _, r := range lat.EndList(end) {
			dump(r)
		}
	}
	if eos := lat.EOS(); eos != nil {
		dump(eos)
	}
	fmt.Fprintln(bw, "===")
}
