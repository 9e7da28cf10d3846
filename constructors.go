// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import "fmt"

// MkFalse returns the constant False Diagram over numVars variables.
func MkFalse(numVars int) Diagram {
	return newBuilder(numVars).seal()
}

// MkTrue returns the constant True Diagram over numVars variables.
func MkTrue(numVars int) Diagram {
	b := newBuilder(numVars)
	b.pushTrue()
	return b.seal()
}

// MkVar returns the Diagram representing the literal v (true iff v is true),
// over numVars variables. It fails with ErrVariableRange if v is out of
// range.
func MkVar(numVars int, v Variable) (Diagram, error) {
	return mkLiteral(numVars, v, true)
}

// MkNotVar returns the Diagram representing the literal !v (true iff v is
// false), over numVars variables. It fails with ErrVariableRange if v is out
// of range.
func MkNotVar(numVars int, v Variable) (Diagram, error) {
	return mkLiteral(numVars, v, false)
}

func mkLiteral(numVars int, v Variable, positive bool) (Diagram, error) {
	if int(v) >= numVars {
		return Diagram{}, logerr(fmt.Errorf("%w: variable %d, numVars %d", ErrVariableRange, v, numVars))
	}
	b := newBuilder(numVars)
	b.pushTrue()
	if positive {
		if _, err := b.pushNode(v, PtrFalse, PtrTrue); err != nil {
			return Diagram{}, logerr(err)
		}
	} else {
		if _, err := b.pushNode(v, PtrTrue, PtrFalse); err != nil {
			return Diagram{}, logerr(err)
		}
	}
	return b.seal(), nil
}

// MkCubeLiterals is the literal-list counterpart of MkCube: it builds the
// PartialValuation from literals, rejecting a variable named twice, then
// constructs the cube exactly as MkCube does.
func MkCubeLiterals(numVars int, literals ...Literal) (Diagram, error) {
	pv, err := NewPartialValuationFromLiterals(numVars, literals...)
	if err != nil {
		return Diagram{}, err
	}
	return MkCube(numVars, pv)
}

// MkCube returns the Diagram representing the conjunction of the literals
// named by pv: for each variable constrained in pv, the literal
// v if Get(v) is true, !v otherwise; unconstrained variables do not appear.
// It fails with ErrVariableRange if pv is sized for a different numVars.
func MkCube(numVars int, pv PartialValuation) (Diagram, error) {
	if pv.Len() != numVars {
		return Diagram{}, logerr(fmt.Errorf("%w: partial valuation has %d variables, want %d", ErrVariableRange, pv.Len(), numVars))
	}
	b := newBuilder(numVars)
	b.pushTrue()
	cur := PtrTrue
	// Build from the highest-indexed constrained variable down to the
	// lowest, so the final node array respects the ordering invariant
	// (variable indices ascend from the root toward the terminals).
	entries := pv.Vars()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		var low, high Pointer
		if e.Value {
			low, high = PtrFalse, cur
		} else {
			low, high = cur, PtrFalse
		}
		var err error
		cur, err = b.pushNode(e.Var, low, high)
		if err != nil {
			return Diagram{}, logerr(err)
		}
	}
	return b.seal(), nil
}

// MkDNF builds the Diagram representing the disjunction of a set of cubes,
// given as PartialValuations, over numVars variables. The result
// is reduced and canonical: cubes that overlap, that are empty, or that
// conflict with each other are handled transparently. It fails with
// ErrVariableRange if any cube is sized for a different numVars.
//
// The algorithm recursively splits on variables from 0 upward, skipping any
// variable not mentioned by the cubes reaching that recursive call (an
// optimization against the DNF's own width, not the Diagram's), and
// hash-conses nodes built along the way so that sharing is discovered as
// soon as it is created rather than left to a later reduction pass.
func MkDNF(numVars int, cubes []PartialValuation, opts ...func(*configs)) (Diagram, error) {
	cfg := makeconfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	for _, c := range cubes {
		if c.Len() != numVars {
			return Diagram{}, logerr(fmt.Errorf("%w: cube has %d variables, want %d", ErrVariableRange, c.Len(), numVars))
		}
	}

	b := newBuilder(numVars)
	b.pushTrue()
	cache := make(map[node]Pointer, cfg.capacityHint)

	mk := func(v Variable, low, high Pointer) (Pointer, error) {
		if low == high {
			return low, nil
		}
		n := node{Var: v, Low: low, High: high}
		if p, ok := cache[n]; ok {
			return p, nil
		}
		p, err := b.pushNode(v, low, high)
		if err != nil {
			return 0, err
		}
		cache[n] = p
		return p, nil
	}

	var build func(active []PartialValuation, v Variable) (Pointer, error)
	build = func(active []PartialValuation, v Variable) (Pointer, error) {
		if len(active) == 0 {
			return PtrFalse, nil
		}
		if int(v) == numVars {
			// Every cube remaining agrees with the path taken to get
			// here on each variable it constrains; since at least one
			// cube reached this point, the path satisfies the DNF.
			return PtrTrue, nil
		}
		// Skip v entirely if no active cube constrains it: neither
		// branch needs a node for it, so recurse directly on v+1 and
		// reuse the single result for both low and high.
		mentioned := false
		for _, c := range active {
			if _, ok := c.Get(v); ok {
				mentioned = true
				break
			}
		}
		if !mentioned {
			return build(active, v+1)
		}

		var onLow, onHigh []PartialValuation
		for _, c := range active {
			val, ok := c.Get(v)
			switch {
			case !ok:
				onLow = append(onLow, c)
				onHigh = append(onHigh, c)
			case !val:
				onLow = append(onLow, c)
			default:
				onHigh = append(onHigh, c)
			}
		}
		low, err := build(onLow, v+1)
		if err != nil {
			return 0, err
		}
		high, err := build(onHigh, v+1)
		if err != nil {
			return 0, err
		}
		return mk(v, low, high)
	}

	root, err := build(cubes, 0)
	if err != nil {
		return Diagram{}, logerr(err)
	}
	if root.isTerminal() {
		if root == PtrTrue {
			return MkTrue(numVars), nil
		}
		return MkFalse(numVars), nil
	}
	return b.seal(), nil
}
