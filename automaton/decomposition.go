package automaton

import (
	"fmt"

	"github.com/reallybigsky/formal-lang-course/bitmatrix"
)

// Decomposition is the boolean decomposition D(A) of spec §3: an ordered
// state list plus one sparse boolean matrix per label (including Epsilon
// when present). mats[label][i,j]=1 iff (states[i],label,states[j]) is a
// transition of the automaton the decomposition was built from.
//
// Pairs is non-nil only for decompositions produced by Kron: Pairs[i] holds
// the (lhsIndex, rhsIndex) that state i was built from, giving RPQ's decode
// step (spec §4.4 step 4) an O(1) way back to the original automata without
// parsing state-label strings.
type Decomposition struct {
	States []string
	Mats   map[string]*bitmatrix.CSR
	Pairs  [][2]int
}

// Decompose builds the boolean decomposition of n (spec §3). The states
// vector is n.States(), pinning the id<->state mapping for every subsequent
// matrix operation on this decomposition (spec §9 "state-id aliasing").
func (n *NFA) Decompose() (*Decomposition, error) {
	states := n.States()
	size := len(states)
	idx := make(map[string]int, size)
	for i, s := range states {
		idx[s] = i
	}

	cellsByLabel := make(map[string][]bitmatrix.Cell)
	for from, byLabel := range n.trans {
		fi, ok := idx[from]
		if !ok {
			return nil, fmt.Errorf("automaton.Decompose: %w", ErrUnknownState)
		}
		for label, tos := range byLabel {
			for to := range tos {
				ti, ok := idx[to]
				if !ok {
					return nil, fmt.Errorf("automaton.Decompose: %w", ErrUnknownState)
				}
				cellsByLabel[label] = append(cellsByLabel[label], bitmatrix.Cell{Row: fi, Col: ti})
			}
		}
	}

	mats := make(map[string]*bitmatrix.CSR, len(cellsByLabel))
	for label, cells := range cellsByLabel {
		if size == 0 {
			continue
		}
		m, err := bitmatrix.NewCSR(size, size, cells)
		if err != nil {
			return nil, err
		}
		mats[label] = m
	}

	return &Decomposition{States: states, Mats: mats}, nil
}

// matFor returns the matrix for label, or the size x size zero matrix if
// label is absent (spec §9 "a missing per-label matrix as a zero matrix of
// the appropriate shape, not as an error").
func (d *Decomposition) matFor(label string, size int) *bitmatrix.CSR {
	if m, ok := d.Mats[label]; ok {
		return m
	}
	return bitmatrix.Zero(size, size)
}

// DirectSum computes the block-diagonal composition of a and b, per label
// (spec §4.1 direct_sum). The resulting state list is the concatenation
// states(a) ++ states(b) (spec §9).
func DirectSum(a, b *Decomposition) *Decomposition {
	labels := unionLabels(a, b)
	sizeA, sizeB := len(a.States), len(b.States)

	mats := make(map[string]*bitmatrix.CSR, len(labels))
	for _, label := range labels {
		mats[label] = bitmatrix.BlockDiag(a.matFor(label, sizeA), b.matFor(label, sizeB))
	}

	states := make([]string, 0, sizeA+sizeB)
	states = append(states, a.States...)
	states = append(states, b.States...)

	return &Decomposition{States: states, Mats: mats}
}

// Kron computes the Kronecker product of a and b per label (spec §4.1 kron,
// §4.3 step 2). A label missing from either side is treated as a zero
// matrix of that side's shape, so labels unique to one side still
// contribute an all-zero block rather than erroring (spec §4.3 "Edge
// cases"). The resulting state-space is the lexicographic product
// states(a) x states(b); Pairs records each row's (lhsIndex, rhsIndex).
func Kron(a, b *Decomposition) *Decomposition {
	labels := unionLabels(a, b)
	sizeA, sizeB := len(a.States), len(b.States)

	mats := make(map[string]*bitmatrix.CSR, len(labels))
	for _, label := range labels {
		mats[label] = bitmatrix.Kron(a.matFor(label, sizeA), b.matFor(label, sizeB))
	}

	states := make([]string, 0, sizeA*sizeB)
	pairs := make([][2]int, 0, sizeA*sizeB)
	for i, sa := range a.States {
		for j, sb := range b.States {
			states = append(states, fmt.Sprintf("%s,%s", sa, sb))
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return &Decomposition{States: states, Mats: mats, Pairs: pairs}
}

func unionLabels(a, b *Decomposition) []string {
	set := make(map[string]struct{}, len(a.Mats)+len(b.Mats))
	for l := range a.Mats {
		set[l] = struct{}{}
	}
	for l := range b.Mats {
		set[l] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	return out
}

// CollapsedAdjacency sums every per-label matrix into a single size x size
// matrix (spec §4.1-closure step 1: "U <- sum_l mats[l]"). Returns the
// len(States) x len(States) zero matrix when the automaton has no
// transitions at all.
func (d *Decomposition) CollapsedAdjacency() (*bitmatrix.CSR, error) {
	size := len(d.States)
	if size == 0 {
		return nil, fmt.Errorf("automaton.CollapsedAdjacency: %w", ErrUnknownState)
	}
	if len(d.Mats) == 0 {
		return bitmatrix.Zero(size, size), nil
	}
	mats := make([]*bitmatrix.CSR, 0, len(d.Mats))
	for _, m := range d.Mats {
		mats = append(mats, m)
	}
	return bitmatrix.SumAll(mats)
}
