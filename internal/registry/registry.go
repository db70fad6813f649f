// Package registry is the default, in-memory implementation of
// host.Oracles: a name table plus constructor and function tables built
// by elaborate from parsed .sz modules. Its three-tier name-resolution
// shape (constructors / functions / unknown) is repurposed from the
// teacher's TypeRegistry (internal/types/registry.go's
// builtins/imports/userDefined tiers).
package registry

import (
	"fmt"
	"sort"

	"sizecheck/internal/ast"
	"sizecheck/internal/host"
	"sizecheck/internal/term"
)

// ConInfo records one declared constructor's fixed arity and declaration
// site, for arity checking during elaboration.
type ConInfo struct {
	Name  term.Name
	Arity int
	Pos   ast.Position
}

// Program is a fully elaborated collection of modules: every declared
// constructor, every function's Name and clauses, and the source ranges
// each Name's definition spans — everything host.Oracles needs.
type Program struct {
	constructors map[string]ConInfo
	functions    map[string]term.Name
	clauses      map[term.Name][]host.Clause
	ranges       map[term.Name]host.RangeSet
	blocks       map[term.Name]host.MutualBlock
	reduce       func(term.Term) (term.Term, error)
	seq          int
}

// New builds an empty Program ready for elaborate to populate.
func New() *Program {
	return &Program{
		constructors: make(map[string]ConInfo),
		functions:    make(map[string]term.Name),
		clauses:      make(map[term.Name][]host.Clause),
		ranges:       make(map[term.Name]host.RangeSet),
		blocks:       make(map[term.Name]host.MutualBlock),
	}
}

// DeclareConstructor registers a constructor name with its arity. Returns
// an error if the name is already declared (as a constructor or a
// function), mirroring TypeRegistry's duplicate-type rejection.
func (p *Program) DeclareConstructor(name string, arity int, pos ast.Position) (term.Name, error) {
	if _, ok := p.constructors[name]; ok {
		return term.Name{}, fmt.Errorf("constructor %q already declared", name)
	}
	if _, ok := p.functions[name]; ok {
		return term.Name{}, fmt.Errorf("%q is already declared as a function", name)
	}
	n := p.fresh(name)
	p.constructors[name] = ConInfo{Name: n, Arity: arity, Pos: pos}
	return n, nil
}

// LookupConstructor reports whether name is a declared constructor.
func (p *Program) LookupConstructor(name string) (ConInfo, bool) {
	info, ok := p.constructors[name]
	return info, ok
}

// DeclareFunction registers a function name, allocating its Name on first
// sight; subsequent clauses for the same surface name reuse it.
func (p *Program) DeclareFunction(name string) (term.Name, error) {
	if _, ok := p.constructors[name]; ok {
		return term.Name{}, fmt.Errorf("%q is already declared as a constructor", name)
	}
	if n, ok := p.functions[name]; ok {
		return n, nil
	}
	n := p.fresh(name)
	p.functions[name] = n
	return n, nil
}

// LookupFunction reports whether name is a declared function.
func (p *Program) LookupFunction(name string) (term.Name, bool) {
	n, ok := p.functions[name]
	return n, ok
}

// AddClause appends one clause to a function's clause list.
func (p *Program) AddClause(fn term.Name, clause host.Clause) {
	p.clauses[fn] = append(p.clauses[fn], clause)
}

// AddRange extends the source ranges recorded for a Name.
func (p *Program) AddRange(n term.Name, pos ast.Position) {
	p.ranges[n] = p.ranges[n].Union(host.NewRangeSet(pos))
}

// SetMutualBlock records the mutual block a Name belongs to, as computed
// by elaborate's strongly-connected-components pass.
func (p *Program) SetMutualBlock(n term.Name, block host.MutualBlock) {
	p.blocks[n] = block
}

// Functions returns every declared function's Name, in declaration order
// is not guaranteed (map iteration) — callers needing a stable order
// should consult a MutualBlock instead.
func (p *Program) Functions() []term.Name {
	out := make([]term.Name, 0, len(p.functions))
	for _, n := range p.functions {
		out = append(out, n)
	}
	return out
}

// Blocks returns every distinct mutual block elaborate recorded, once
// each, in a stable (name-sorted) order — the CLI and LSP drive
// checker.TerminationCheck one block at a time, and both want a
// deterministic iteration order for reproducible output.
func (p *Program) Blocks() []host.MutualBlock {
	names := p.Functions()
	sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })

	seen := make(map[term.Name]bool, len(names))
	var out []host.MutualBlock
	for _, n := range names {
		if seen[n] {
			continue
		}
		block, ok := p.blocks[n]
		if !ok {
			continue
		}
		for _, m := range block.Members {
			seen[m] = true
		}
		out = append(out, block)
	}
	return out
}

func (p *Program) fresh(text string) term.Name {
	p.seq++
	return term.NewName(text, p.seq)
}

// Program implements host.Oracles (see oracles.go); SetReducer installs
// the reduction oracle, which elaborate.Elaborate leaves unset.
var _ host.Oracles = (*Program)(nil)
