package registry

import (
	"fmt"

	"sizecheck/internal/host"
	"sizecheck/internal/term"
)

// SetReducer installs the reduction oracle (the CLI, REPL and LSP pass
// reduce.Normalize after elaborate.Elaborate returns), kept as a field
// rather than a direct import so this package does not need to know
// reduce's pipeline internals.
func (p *Program) SetReducer(fn func(term.Term) (term.Term, error)) {
	p.reduce = fn
}

// Reduce implements host.Oracles. A Program with no reducer installed
// returns terms unchanged — correct only for already-normal input, which
// is what the registry-level unit tests rely on.
func (p *Program) Reduce(t term.Term) (term.Term, error) {
	if p.reduce == nil {
		return t, nil
	}
	return p.reduce(t)
}

// DefOf implements host.Oracles.
func (p *Program) DefOf(n term.Name) (host.DefKind, error) {
	if clauses, ok := p.clauses[n]; ok {
		return host.Function{Clauses: clauses}, nil
	}
	for _, info := range p.constructors {
		if info.Name == n {
			return host.Other{}, nil
		}
	}
	return nil, fmt.Errorf("registry: no definition known for %s", n)
}

// MutualBlocksContaining implements host.Oracles.
func (p *Program) MutualBlocksContaining(n term.Name) (host.MutualBlock, error) {
	block, ok := p.blocks[n]
	if !ok {
		return host.MutualBlock{}, fmt.Errorf("registry: %s is not a member of any known mutual block", n)
	}
	return block, nil
}

// RangesOf implements host.Oracles.
func (p *Program) RangesOf(n term.Name) host.RangeSet {
	return p.ranges[n]
}
