package term

// Term is the tagged variant of section 3: Var, Con, Def, Lam, Pi, Fun, Lit,
// Sort, Meta, Blocked. Exhaustive type-switch over this interface is the
// core's primary control-flow idiom — no other dispatch mechanism is used,
// following the teacher's ast.Node/ast.Expr marker-method convention
// (internal/ast/node.go, internal/ast/expr.go in the teacher).
type Term interface {
	isTerm()
}

// Var is a de Bruijn variable reference; Index 0 is the innermost binder.
// Args are arguments the variable is applied to (a variable can appear at
// the head of a spine, e.g. `x y z`).
type Var struct {
	Index int
	Args  []Term
}

func (Var) isTerm() {}

// Con is a saturated or partial application of a data constructor.
type Con struct {
	Name Name
	Args []Term
}

func (Con) isTerm() {}

// Def is an application of a top-level function/definition name. This is
// the only case the clause walker inspects for recursive calls.
type Def struct {
	Name Name
	Args []Term
}

func (Def) isTerm() {}

// Lam is a single-argument lambda abstraction.
type Lam struct {
	Body Term
}

func (Lam) isTerm() {}

// Pi is a dependent function type `(x : Domain) -> Body`.
type Pi struct {
	Domain Term
	Body   Term
}

func (Pi) isTerm() {}

// Fun is a non-dependent function type `Domain -> Codomain`.
type Fun struct {
	Domain   Term
	Codomain Term
}

func (Fun) isTerm() {}

// Lit is a literal leaf.
type Lit struct {
	Value Literal
}

func (Lit) isTerm() {}

// Sort is a universe leaf (Type, Prop, ...). The checker does not
// distinguish sort levels; it only needs to recognize the leaf shape.
type Sort struct{}

func (Sort) isTerm() {}

// Meta is an uninstantiated metavariable applied to a spine of arguments.
// The walker treats a Meta as a leaf: it collects no calls from it or from
// its arguments.
type Meta struct {
	ID   int
	Args []Term
}

func (Meta) isTerm() {}

// Blocked wraps a term whose further reduction is stuck on an unresolved
// metavariable. It is an invariant violation for Blocked to survive to the
// walker: the reduction oracle is assumed to always clear blocking heads.
type Blocked struct {
	Reason string
	Inner  Term
}

func (Blocked) isTerm() {}

// ArgsOf returns the argument spine of any Term shape that carries one, and
// nil for the leaf shapes (Lam, Pi, Fun, Sort) which do not.
func ArgsOf(t Term) []Term {
	switch n := t.(type) {
	case Var:
		return n.Args
	case Con:
		return n.Args
	case Def:
		return n.Args
	case Meta:
		return n.Args
	default:
		return nil
	}
}
