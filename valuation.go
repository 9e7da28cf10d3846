// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import (
	"fmt"
	"strings"
)

// Valuation is a full, dense assignment of every variable of a Diagram with a
// fixed NumVars to a Boolean value.
type Valuation []bool

func (v Valuation) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, b := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// ************************************************************

// dontcare, positive and negative are the three values a variable can take
// in a PartialValuation.
const (
	dontcare int8 = -1
	negative int8 = 0
	positive int8 = 1
)

// PartialValuation is a sparse assignment of some variables of a Diagram to
// Boolean values; unassigned variables are "don't care". Its zero value is
// the fully unconstrained (empty) partial valuation over zero variables; use
// NewPartialValuation to build one sized for a given NumVars.
type PartialValuation struct {
	bits []int8
}

// NewPartialValuation returns a fully unconstrained PartialValuation sized
// for numVars variables.
func NewPartialValuation(numVars int) PartialValuation {
	bits := make([]int8, numVars)
	for i := range bits {
		bits[i] = dontcare
	}
	return PartialValuation{bits: bits}
}

// Literal is a single (variable, value) assignment, the unit of input
// MkCubeLiterals takes.
type Literal struct {
	Var   Variable
	Value bool
}

// NewPartialValuationFromLiterals builds a PartialValuation over numVars
// variables out of a list of literals. It fails with ErrVariableRange if a
// literal names a variable outside [0, numVars), and ErrDuplicateVariable if
// two literals name the same variable, a mistake NewPartialValuation's bare
// Set cannot detect on its own since a second Set on the same variable is
// indistinguishable from an intentional overwrite.
func NewPartialValuationFromLiterals(numVars int, literals ...Literal) (PartialValuation, error) {
	pv := NewPartialValuation(numVars)
	seen := make([]bool, numVars)
	for _, lit := range literals {
		if int(lit.Var) >= numVars {
			return PartialValuation{}, logerr(fmt.Errorf("%w: variable %d, numVars %d", ErrVariableRange, lit.Var, numVars))
		}
		if seen[lit.Var] {
			return PartialValuation{}, logerr(fmt.Errorf("%w: variable %d", ErrDuplicateVariable, lit.Var))
		}
		seen[lit.Var] = true
		pv.Set(lit.Var, lit.Value)
	}
	return pv, nil
}

// Len returns the number of variables this PartialValuation is sized for.
func (pv PartialValuation) Len() int {
	return len(pv.bits)
}

// Get returns the value assigned to v and whether v is constrained at all.
func (pv PartialValuation) Get(v Variable) (value bool, ok bool) {
	b := pv.bits[v]
	return b == positive, b != dontcare
}

// Set assigns v to value, mutating pv in place (PartialValuation wraps a
// slice, so this is visible to every holder of pv).
func (pv PartialValuation) Set(v Variable, value bool) {
	if value {
		pv.bits[v] = positive
	} else {
		pv.bits[v] = negative
	}
}

// Unset clears any assignment of v, making it "don't care" again.
func (pv PartialValuation) Unset(v Variable) {
	pv.bits[v] = dontcare
}

// clone returns an independent copy of pv.
func (pv PartialValuation) clone() PartialValuation {
	bits := make([]int8, len(pv.bits))
	copy(bits, pv.bits)
	return PartialValuation{bits: bits}
}

// Vars returns the constrained variables of pv, in ascending order, together
// with their assigned value. Iterating in ascending variable order is what
// makes DNF output and cube construction canonical modulo cube-set
// equality.
func (pv PartialValuation) Vars() []Literal {
	res := make([]Literal, 0, len(pv.bits))
	for i, b := range pv.bits {
		if b != dontcare {
			res = append(res, Literal{Variable(i), b == positive})
		}
	}
	return res
}

func (pv PartialValuation) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i, b := range pv.bits {
		if b == dontcare {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		if b == negative {
			sb.WriteByte('!')
		}
		fmt.Fprintf(&sb, "v%d", i)
	}
	sb.WriteByte('}')
	return sb.String()
}
