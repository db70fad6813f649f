// Package term defines the internal term calculus the termination checker
// operates over: names, literals, and the Term sum type of section 3 of the
// specification.
package term

import "fmt"

// Name is an opaque, comparable identifier for a top-level function or
// constructor. It is never constructed outside this package plus the
// registry/elaborate packages that own name allocation — the core treats
// Names as flat identifiers, never as object references (see DESIGN notes
// on cyclic references).
type Name struct {
	text string
	seq  int
}

// NewName allocates a fresh Name. Two Names are equal iff they share both
// their text and sequence number, so shadowed or re-declared surface names
// never collide with an earlier definition of the same spelling.
func NewName(text string, seq int) Name {
	return Name{text: text, seq: seq}
}

// String returns the display form of a Name, used by diagnostics.
func (n Name) String() string {
	if n.seq == 0 {
		return n.text
	}
	return fmt.Sprintf("%s#%d", n.text, n.seq)
}

// Text returns the bare spelling of the Name, ignoring disambiguation.
func (n Name) Text() string { return n.text }
