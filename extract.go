// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import "fmt"

// ErrNoSatisfyingValuation reports that a query requiring a satisfying
// assignment (FirstValuation, MostPositiveValuation, ...) was called on the
// constant False Diagram, which has none.
var ErrNoSatisfyingValuation = fmt.Errorf("%w: diagram is constantly false", ErrMalformedInput)

// walkExtreme descends from the root always preferring the low branch
// (preferLow) or the high branch, falling back to the other child only when
// the preferred one is the False terminal, and returns the resulting cube.
// The descent always advances, since a reduced diagram's live nodes are
// guaranteed to have at least one child that is not the False terminal.
func walkExtreme(d Diagram, preferLow bool) (PartialValuation, error) {
	if d.IsFalse() {
		return PartialValuation{}, logerr(ErrNoSatisfyingValuation)
	}
	pv := NewPartialValuation(d.NumVars())
	p := d.Root()
	for !p.isTerminal() {
		v := d.Var(p)
		low, high := d.Low(p), d.High(p)
		if preferLow {
			if low != PtrFalse {
				pv.Set(v, false)
				p = low
			} else {
				pv.Set(v, true)
				p = high
			}
		} else {
			if high != PtrFalse {
				pv.Set(v, true)
				p = high
			} else {
				pv.Set(v, false)
				p = low
			}
		}
	}
	return pv, nil
}

// FirstPath returns the cube of the lexicographically first satisfying path
// through d, leaving every variable d does not constrain along that path as
// don't-care. It fails with ErrNoSatisfyingValuation if d is constantly
// False.
func FirstPath(d Diagram) (PartialValuation, error) {
	return walkExtreme(d, true)
}

// LastPath is the high-preferring counterpart of FirstPath.
func LastPath(d Diagram) (PartialValuation, error) {
	return walkExtreme(d, false)
}

// fillDense turns a cube into a full Valuation, filling don't-care variables
// with fill.
func fillDense(pv PartialValuation, fill bool) Valuation {
	val := make(Valuation, pv.Len())
	for i, b := range pv.bits {
		switch b {
		case positive:
			val[i] = true
		case negative:
			val[i] = false
		default:
			val[i] = fill
		}
	}
	return val
}

// FirstValuation returns the first satisfying Valuation of d in the order
// that sets variable 0 to false ahead of true, variable 1 next, and so on,
// with every variable d does not constrain along that path defaulting to
// false. It fails with ErrNoSatisfyingValuation if d is constantly False.
func FirstValuation(d Diagram) (Valuation, error) {
	pv, err := FirstPath(d)
	if err != nil {
		return nil, err
	}
	return fillDense(pv, false), nil
}

// LastValuation is the high-preferring, don't-care-defaults-to-true
// counterpart of FirstValuation.
func LastValuation(d Diagram) (Valuation, error) {
	pv, err := LastPath(d)
	if err != nil {
		return nil, err
	}
	return fillDense(pv, true), nil
}

// ************************************************************

const dpInvalid = -1 << 30

// mostExtremeValuation computes the Valuation satisfying d that maximizes the
// number of variables set to preferred (true for MostPositiveValuation,
// false for MostNegativeValuation), defaulting every variable not forced by
// the chosen path to preferred as well.
//
// It is a dynamic program over d's node array, read in the postorder the
// array is already stored in, so every child is
// resolved before the parent that references it: for each node, the score of
// taking its high branch is 1 (this variable matches preferred) plus the
// score of the high child plus the number of variables skipped between this
// node and that child (which also default to preferred), and symmetrically
// for the low branch with a 0 contribution from this variable. The branch
// whose total is larger wins, ties going to the low branch; a branch that
// leads to the False terminal is never chosen. A node whose children are
// both the False terminal cannot occur in a reduced diagram, so that case
// is unreachable rather than checked.
func mostExtremeValuation(d Diagram, preferHigh bool) (Valuation, error) {
	if d.IsFalse() {
		return nil, logerr(ErrNoSatisfyingValuation)
	}
	val := make(Valuation, d.NumVars())
	for i := range val {
		val[i] = preferHigh
	}
	if d.IsTrue() {
		return val, nil
	}

	size := d.Size()
	score := make([]int, size)
	chooseHigh := make([]bool, size)
	score[PtrTrue] = 0

	branchScore := func(child Pointer, v Variable, matchesPreferred bool) int {
		if child == PtrFalse {
			return dpInvalid
		}
		skip := int(d.varOrSentinel(child)) - int(v) - 1
		s := skip + score[child]
		if matchesPreferred {
			s++
		}
		return s
	}

	for p := Pointer(2); int(p) < size; p++ {
		v := d.Var(p)
		low, high := d.Low(p), d.High(p)
		highScore := branchScore(high, v, preferHigh)
		lowScore := branchScore(low, v, !preferHigh)
		if preferHigh {
			// Ties go to the low branch, which is the lexicographically
			// first of two equally positive valuations.
			if highScore > lowScore {
				score[p], chooseHigh[p] = highScore, true
			} else {
				score[p], chooseHigh[p] = lowScore, false
			}
		} else {
			if lowScore >= highScore {
				score[p], chooseHigh[p] = lowScore, false
			} else {
				score[p], chooseHigh[p] = highScore, true
			}
		}
	}

	p := d.Root()
	for !p.isTerminal() {
		v := d.Var(p)
		if chooseHigh[p] {
			val[v] = true
			p = d.High(p)
		} else {
			val[v] = false
			p = d.Low(p)
		}
	}
	return val, nil
}

// MostPositiveValuation returns the satisfying Valuation of d with the
// greatest number of variables set to true, preferring true for every
// variable d leaves unconstrained. It fails with ErrNoSatisfyingValuation if
// d is constantly False.
func MostPositiveValuation(d Diagram) (Valuation, error) {
	return mostExtremeValuation(d, true)
}

// MostNegativeValuation returns the satisfying Valuation of d with the
// greatest number of variables set to false, preferring false for every
// variable d leaves unconstrained. It fails with ErrNoSatisfyingValuation if
// d is constantly False.
func MostNegativeValuation(d Diagram) (Valuation, error) {
	return mostExtremeValuation(d, false)
}

// ************************************************************

// ToDNF enumerates every root-to-True path of d as a cube, pruning any
// subtree reached through a False child. The result is a disjunctive normal
// form equivalent to d: feeding it back into MkDNF reconstructs a Diagram
// with the same denotation.
func ToDNF(d Diagram) []PartialValuation {
	if d.IsFalse() {
		return nil
	}
	if d.IsTrue() {
		return []PartialValuation{NewPartialValuation(d.NumVars())}
	}
	var out []PartialValuation
	pv := NewPartialValuation(d.NumVars())
	var walk func(p Pointer)
	walk = func(p Pointer) {
		if p == PtrFalse {
			return
		}
		if p == PtrTrue {
			out = append(out, pv.clone())
			return
		}
		v := d.Var(p)
		pv.Set(v, false)
		walk(d.Low(p))
		pv.Set(v, true)
		walk(d.High(p))
		pv.Unset(v)
	}
	walk(d.Root())
	return out
}
