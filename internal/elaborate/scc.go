package elaborate

import (
	"sort"

	"sizecheck/internal/host"
	"sizecheck/internal/term"
)

// stronglyConnected partitions functions into mutual blocks by running
// Tarjan's strongly-connected-components algorithm over the call-reference
// graph refs built while lowering clause bodies. A function with no
// recursive calls at all still comes back as its own singleton block,
// matching how the walker treats non-recursive definitions: there is
// simply no self-loop to check.
//
// No example repo in the retrieval pack exposes a ready-made SCC routine
// against a plain name graph this small without first wrapping the names
// in a library's own Node/Graph interfaces (see DESIGN.md); Tarjan's
// algorithm is short enough, and central enough to correctness, to write
// by hand rather than adapt a heavier graph library for one call site.
func stronglyConnected(functions []term.Name, refs map[term.Name]map[term.Name]bool) []host.MutualBlock {
	sorted := make([]term.Name, len(functions))
	copy(sorted, functions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })

	st := &tarjanState{
		index:   make(map[term.Name]int),
		low:     make(map[term.Name]int),
		onStack: make(map[term.Name]bool),
		refs:    refs,
	}
	for _, n := range sorted {
		if _, seen := st.index[n]; !seen {
			st.strongConnect(n)
		}
	}
	return st.blocks
}

type tarjanState struct {
	index   map[term.Name]int
	low     map[term.Name]int
	onStack map[term.Name]bool
	stack   []term.Name
	counter int
	refs    map[term.Name]map[term.Name]bool
	blocks  []host.MutualBlock
}

func (st *tarjanState) strongConnect(v term.Name) {
	st.index[v] = st.counter
	st.low[v] = st.counter
	st.counter++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, w := range st.neighbors(v) {
		if _, seen := st.index[w]; !seen {
			st.strongConnect(w)
			if st.low[w] < st.low[v] {
				st.low[v] = st.low[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.low[v] {
				st.low[v] = st.index[w]
			}
		}
	}

	if st.low[v] != st.index[v] {
		return
	}

	var members []term.Name
	for {
		n := len(st.stack) - 1
		w := st.stack[n]
		st.stack = st.stack[:n]
		st.onStack[w] = false
		members = append(members, w)
		if w == v {
			break
		}
	}
	for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
		members[i], members[j] = members[j], members[i]
	}
	st.blocks = append(st.blocks, host.MutualBlock{Members: members})
}

func (st *tarjanState) neighbors(v term.Name) []term.Name {
	out := make([]term.Name, 0, len(st.refs[v]))
	for w := range st.refs[v] {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
