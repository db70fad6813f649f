// Package reduce is the default reduction oracle: a small pipeline of
// term-rewrite passes over term.Term, structured the way the teacher
// structures its EVM-IR optimizer (internal/ir/optimizations.go's
// OptimizationPass/OptimizationPipeline shape), repurposed from gas-focused
// IR passes to term normalization. It is ordinary host code, not part of
// the core — any host.Oracles implementation may supply Reduce however it
// likes; this is simply the one the CLI, REPL, and LSP wire in by default.
package reduce

import "sizecheck/internal/term"

// Pass is one rewrite step over a term.Term, mirroring the teacher's
// OptimizationPass (Name/Description/Apply). Apply reports whether it
// changed anything, the same contract the teacher's passes use to decide
// whether to log progress.
type Pass interface {
	Name() string
	Description() string
	Apply(t term.Term) (term.Term, bool)
}

// Pipeline runs its passes once each, in order, the same shape as the
// teacher's OptimizationPipeline.Run — no pass here needs a second look at
// an earlier pass's output, since each pass already recurses to a fixpoint
// over its own rewrite rule in a single Apply call.
type Pipeline struct {
	passes []Pass
}

// NewPipeline builds the default pipeline: meta-argument normalization,
// then blocked-term elimination.
func NewPipeline() *Pipeline {
	p := &Pipeline{}
	p.AddPass(&SubstituteMeta{})
	p.AddPass(&UnblockResolved{})
	return p
}

// AddPass appends a rewrite pass to the pipeline.
func (p *Pipeline) AddPass(pass Pass) {
	p.passes = append(p.passes, pass)
}

// Run applies every pass to t in sequence, feeding each pass's output
// forward into the next.
func (p *Pipeline) Run(t term.Term) term.Term {
	cur := t
	for _, pass := range p.passes {
		next, _ := pass.Apply(cur)
		cur = next
	}
	return cur
}

// Normalize is the default host.Oracles.Reduce implementation: it never
// fails, since neither default pass can get stuck — a host wiring a real
// metavariable-unification engine in as a pass is the one that would
// introduce a genuine Reduce error.
func Normalize(t term.Term) (term.Term, error) {
	return NewPipeline().Run(t), nil
}
