// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import "fmt"

// pairKey is the memoization key for a binary Apply recursion: a pair of
// operand pointers. Apply never needs to key on the operator too, because a
// single Apply call only ever uses one operator for its whole recursion.
type pairKey struct {
	a, b Pointer
}

// Apply combines a and b with op, returning the Diagram representing
// op(a, b). Both operands must share the same NumVars, otherwise
// Apply fails with ErrShapeMismatch.
//
// The recursion descends both operands in lock step by variable order,
// memoizing each pair of operand pointers it resolves, and hash-conses
// every node it builds so equal subresults are shared rather than
// duplicated. Both caches live only for the duration of the call; pointers
// are meaningless outside the Diagram they index into.
func Apply(op Operator, a, b Diagram, opts ...func(*configs)) (Diagram, error) {
	if a.NumVars() != b.NumVars() {
		return Diagram{}, logerr(fmt.Errorf("%w: %d vars vs %d vars", ErrShapeMismatch, a.NumVars(), b.NumVars()))
	}
	cfg := makeconfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	numVars := a.NumVars()
	bld := newBuilder(numVars)
	bld.pushTrue()
	hashcons := make(map[node]Pointer, cfg.capacityHint)
	memo := make(map[pairKey]Pointer, cfg.capacityHint)

	mk := func(v Variable, low, high Pointer) (Pointer, error) {
		if low == high {
			return low, nil
		}
		n := node{Var: v, Low: low, High: high}
		if p, ok := hashcons[n]; ok {
			return p, nil
		}
		p, err := bld.pushNode(v, low, high)
		if err != nil {
			return 0, err
		}
		hashcons[n] = p
		return p, nil
	}

	tt := truthTable[op]

	var rec func(x, y Pointer) (Pointer, error)
	rec = func(x, y Pointer) (Pointer, error) {
		if x.isTerminal() && y.isTerminal() {
			return tt[x][y], nil
		}
		key := pairKey{x, y}
		if p, ok := memo[key]; ok {
			return p, nil
		}
		vx, vy := a.varOrSentinel(x), b.varOrSentinel(y)
		var v Variable
		var xlow, xhigh, ylow, yhigh Pointer
		switch {
		case vx == vy:
			v = vx
			xlow, xhigh = a.Low(x), a.High(x)
			ylow, yhigh = b.Low(y), b.High(y)
		case vx < vy:
			v = vx
			xlow, xhigh = a.Low(x), a.High(x)
			ylow, yhigh = y, y
		default:
			v = vy
			xlow, xhigh = x, x
			ylow, yhigh = b.Low(y), b.High(y)
		}
		low, err := rec(xlow, ylow)
		if err != nil {
			return 0, err
		}
		high, err := rec(xhigh, yhigh)
		if err != nil {
			return 0, err
		}
		p, err := mk(v, low, high)
		if err != nil {
			return 0, err
		}
		memo[key] = p
		return p, nil
	}

	root, err := rec(a.Root(), b.Root())
	if err != nil {
		return Diagram{}, logerr(err)
	}
	if root.isTerminal() {
		if root == PtrTrue {
			return MkTrue(numVars), nil
		}
		return MkFalse(numVars), nil
	}
	return bld.seal(), nil
}

// Not returns the negation of d.
func Not(d Diagram) Diagram {
	res, err := Apply(OpXor, d, MkTrue(d.NumVars()))
	if err != nil {
		// Xor never fails a shape check against a Diagram built from
		// the same NumVars.
		panic(err)
	}
	return res
}

// And returns a && b.
func And(a, b Diagram) (Diagram, error) { return Apply(OpAnd, a, b) }

// Or returns a || b.
func Or(a, b Diagram) (Diagram, error) { return Apply(OpOr, a, b) }

// Xor returns a != b.
func Xor(a, b Diagram) (Diagram, error) { return Apply(OpXor, a, b) }

// Imp returns a -> b.
func Imp(a, b Diagram) (Diagram, error) { return Apply(OpImp, a, b) }

// Biimp returns a <-> b.
func Biimp(a, b Diagram) (Diagram, error) { return Apply(OpBiimp, a, b) }
