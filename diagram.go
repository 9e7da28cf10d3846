// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import "fmt"

// Diagram is an array-packed, reduced, ordered binary decision diagram over a
// fixed number of variables. The zero value is not a valid Diagram; use one of
// the constructors (MkFalse, MkTrue, MkVar, ...) or an operator that returns
// one.
//
// A Diagram is immutable once returned by any function in this package: it is
// built by an internal builder during a single operation, then sealed. It is
// safe to share a Diagram, or to read it concurrently from several
// goroutines, but it must never be shared between two independent
// constructions (see the package doc).
type Diagram struct {
	nodes   []node
	numVars Variable
}

// NumVars returns the number of variables this Diagram is defined over.
func (d Diagram) NumVars() int {
	return int(d.numVars)
}

// Size returns the number of node records in the Diagram, including the
// terminal prefix.
func (d Diagram) Size() int {
	return len(d.nodes)
}

// Root returns the Pointer to the root node of the Diagram, which is always
// the last entry of its node array.
func (d Diagram) Root() Pointer {
	return Pointer(len(d.nodes) - 1)
}

// IsFalse reports whether d is exactly the constant False function.
func (d Diagram) IsFalse() bool {
	return len(d.nodes) == 1
}

// IsTrue reports whether d is exactly the constant True function.
func (d Diagram) IsTrue() bool {
	return len(d.nodes) == 2
}

// isTerminal reports whether p addresses one of the two terminal nodes.
func (p Pointer) isTerminal() bool {
	return p < 2
}

// Low returns the false-branch (low) child of the node at p.
func (d Diagram) Low(p Pointer) Pointer {
	return d.nodes[p].Low
}

// High returns the true-branch (high) child of the node at p.
func (d Diagram) High(p Pointer) Pointer {
	return d.nodes[p].High
}

// Var returns the variable tested at the internal node p. Calling Var on a
// terminal Pointer is a precondition violation: in a debug
// build it panics, in the default build it returns the sentinel numVars,
// which is harmless for every algorithm in this package because terminals
// always compare as "greater" than any real variable.
func (d Diagram) Var(p Pointer) Variable {
	if _DEBUG && p.isTerminal() {
		panic(fmt.Sprintf("robdd: Var called on terminal pointer %d", p))
	}
	return d.nodes[p].Var
}

// varOrSentinel returns the variable at p, using numVars as the sentinel
// value for terminal pointers. It is the internal counterpart of Var used by
// every recursive algorithm that needs to compare "variable of a child" with
// "variable of a parent" without special-casing terminals.
func (d Diagram) varOrSentinel(p Pointer) Variable {
	if p.isTerminal() {
		return d.numVars
	}
	return d.nodes[p].Var
}

// String renders a short human-readable summary of the Diagram, useful
// while debugging; it does not attempt to draw the graph, which is the job
// of an external exporter.
func (d Diagram) String() string {
	if d.IsFalse() {
		return "False"
	}
	if d.IsTrue() {
		return "True"
	}
	return fmt.Sprintf("Diagram(vars=%d, size=%d, root=%d)", d.numVars, len(d.nodes), d.Root())
}

// Stats reports the size of the Diagram and the share of it taken by
// internal (non-terminal) nodes. There are no garbage collection or resize
// figures to report, since a Diagram never undergoes either.
func (d Diagram) Stats() string {
	internal := 0
	if len(d.nodes) > 2 {
		internal = len(d.nodes) - 2
	}
	return fmt.Sprintf("NumVars:  %d\nSize:     %d\nInternal: %d\n", d.numVars, len(d.nodes), internal)
}

// ************************************************************

// builder is the only type that may append node records to a Diagram. It
// moves through a two-state lifecycle, empty then sealed: created by
// newBuilder, mutated only through pushTrue, pushNode and the hash-consing
// wrappers in constructors.go/apply.go/relops.go, then handed to seal, which
// returns an immutable Diagram sharing the builder's node slice; the builder
// must not be used after that.
type builder struct {
	nodes   []node
	numVars Variable
}

// newBuilder initializes the terminal prefix for a Diagram over numVars
// variables.
func newBuilder(numVars int) *builder {
	nv := Variable(numVars)
	return &builder{
		nodes:   []node{{Var: nv, Low: PtrFalse, High: PtrFalse}},
		numVars: nv,
	}
}

// pushTrue appends the 1-terminal on top of the 0-terminal, used by
// constructors that need the True terminal (MkTrue, mkLiteral, MkCube,
// MkDNF, Apply, cofactor).
func (b *builder) pushTrue() {
	b.nodes = append(b.nodes, node{Var: b.numVars, Low: PtrTrue, High: PtrTrue})
}

// pushNode appends a new internal node and returns its Pointer. Callers are
// responsible for upholding the ordering and postorder requirements;
// pushNode itself only guards against overflowing the 32-bit pointer
// space.
func (b *builder) pushNode(v Variable, low, high Pointer) (Pointer, error) {
	if uint64(len(b.nodes)) >= 1<<32-1 {
		return 0, fmt.Errorf("%w: diagram would exceed %d nodes", ErrNodeOverflow, uint32(1<<32-1))
	}
	b.nodes = append(b.nodes, node{Var: v, Low: low, High: high})
	return Pointer(len(b.nodes) - 1), nil
}

// seal transitions the builder to Sealed and returns the finished, immutable
// Diagram. The builder must not be used afterwards.
func (b *builder) seal() Diagram {
	return Diagram{nodes: b.nodes, numVars: b.numVars}
}
