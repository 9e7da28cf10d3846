// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import (
	"fmt"
	"sort"
)

// quantifiedSet validates vars (no duplicates, all in range) and returns a
// dense membership array indexed by Variable.
func quantifiedSet(numVars int, vars []Variable) ([]bool, error) {
	set := make([]bool, numVars)
	for _, v := range vars {
		if int(v) >= numVars {
			return nil, logerr(fmt.Errorf("%w: variable %d, numVars %d", ErrVariableRange, v, numVars))
		}
		if set[v] {
			return nil, logerr(fmt.Errorf("%w: variable %d listed twice", ErrDuplicateVariable, v))
		}
		set[v] = true
	}
	return set, nil
}

// ************************************************************

// cofactor computes the diagram A|assignment obtained by assuming the fixed
// variables take their assigned value and then dropping them from the
// representation entirely: unlike VarSelect/Select, the result no longer
// depends on those variables at all, even where A did not actually test
// them. This is the textbook cofactor VarProject combines by or to compute
// existential quantification, distinct from var_select's A ∧ (v=bit), which
// stays false wherever the fixed variables disagree with assignment.
//
// Every node that tests a variable named by assignment is replaced by the
// child matching its fixed value, and every other node is rebuilt with
// hash-consing once its children have been restricted. Because the diagram
// orders variables monotonically on every root-to-terminal path, once a
// node's variable is below every fixed variable its subtree needs no
// further rewriting, so this single recursive pass over memoized pointers
// is enough; nothing here needs a second diagram the way Apply does.
func cofactor(d Diagram, assignment PartialValuation) (Diagram, error) {
	numVars := d.NumVars()
	bld := newBuilder(numVars)
	bld.pushTrue()
	hashcons := make(map[node]Pointer, 64)
	memo := make(map[Pointer]Pointer, 64)

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

	var rec func(p Pointer) (Pointer, error)
	rec = func(p Pointer) (Pointer, error) {
		if p.isTerminal() {
			return p, nil
		}
		if cached, ok := memo[p]; ok {
			return cached, nil
		}
		v := d.Var(p)
		var res Pointer
		var err error
		if val, ok := assignment.Get(v); ok {
			var child Pointer
			if val {
				child = d.High(p)
			} else {
				child = d.Low(p)
			}
			res, err = rec(child)
		} else {
			var low, high Pointer
			low, err = rec(d.Low(p))
			if err == nil {
				high, err = rec(d.High(p))
			}
			if err == nil {
				res, err = mk(v, low, high)
			}
		}
		if err != nil {
			return 0, err
		}
		memo[p] = res
		return res, nil
	}

	root, err := rec(d.Root())
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

// VarSelect restricts d to models where v = value: the result is A ∧
// (v=value), still formally a function of v, false wherever v
// disagrees with value. It fails with ErrVariableRange if v is out of
// range.
func VarSelect(d Diagram, v Variable, value bool) (Diagram, error) {
	if int(v) >= d.NumVars() {
		return Diagram{}, logerr(fmt.Errorf("%w: variable %d, numVars %d", ErrVariableRange, v, d.NumVars()))
	}
	lit, err := mkLiteral(d.NumVars(), v, value)
	if err != nil {
		return Diagram{}, err
	}
	return Apply(OpAnd, d, lit)
}

// Select restricts d to models agreeing with assignment on every variable it
// names, i.e. A ∧ cube(assignment). It fails with ErrVariableRange if
// assignment is sized for a different NumVars.
func Select(d Diagram, assignment PartialValuation) (Diagram, error) {
	if assignment.Len() != d.NumVars() {
		return Diagram{}, logerr(fmt.Errorf("%w: assignment has %d variables, want %d", ErrVariableRange, assignment.Len(), d.NumVars()))
	}
	cube, err := MkCube(d.NumVars(), assignment)
	if err != nil {
		return Diagram{}, err
	}
	return Apply(OpAnd, d, cube)
}

// ************************************************************

// VarProject existentially quantifies v out of d: the result is true for a
// valuation iff d is true for that valuation with v set to either true or
// false. It is computed as the disjunction of the two cofactors of v, the
// textbook definition of existential abstraction.
func VarProject(d Diagram, v Variable) (Diagram, error) {
	if int(v) >= d.NumVars() {
		return Diagram{}, logerr(fmt.Errorf("%w: variable %d, numVars %d", ErrVariableRange, v, d.NumVars()))
	}
	pvLow := NewPartialValuation(d.NumVars())
	pvLow.Set(v, false)
	lo, err := cofactor(d, pvLow)
	if err != nil {
		return Diagram{}, err
	}
	pvHigh := NewPartialValuation(d.NumVars())
	pvHigh.Set(v, true)
	hi, err := cofactor(d, pvHigh)
	if err != nil {
		return Diagram{}, err
	}
	return Apply(OpOr, lo, hi)
}

// Project existentially quantifies every variable in vars out of d. The
// result does not depend on the order in which variables are removed, but
// this processes them from the largest index down, which tends to reuse
// intermediate results better between successive steps.
func Project(d Diagram, vars []Variable) (Diagram, error) {
	if _, err := quantifiedSet(d.NumVars(), vars); err != nil {
		return Diagram{}, err
	}
	ordered := append([]Variable(nil), vars...)
	sort.Sort(sort.Reverse(variableSlice(ordered)))
	cur := d
	for _, v := range ordered {
		next, err := VarProject(cur, v)
		if err != nil {
			return Diagram{}, err
		}
		cur = next
	}
	return cur, nil
}

type variableSlice []Variable

func (s variableSlice) Len() int           { return len(s) }
func (s variableSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s variableSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// ************************************************************

// pickRec restricts the leading variable of vars and recurses over the
// rest: for each assignment of the variables outside vars, the result keeps
// v = false wherever some completion of the remaining picked variables
// satisfies the false cofactor, and v = true only where none does, so that
// exactly one assignment of vars survives per outer assignment. The
// availability test quantifies the remaining picked variables out of the
// false cofactor; deciding on the raw cofactor instead would let the choice
// depend on picked variables that are themselves about to be restricted,
// and the result would stop being functional in vars.
//
// When rng is non-nil, the preference between the two values is drawn from
// it wherever both are available; the draw is consumed only when the
// contested region is non-empty, so a forced choice never advances the
// generator.
func pickRec(d Diagram, vars []Variable, rng RandSource) (Diagram, error) {
	if len(vars) == 0 || d.IsFalse() {
		return d, nil
	}
	v, rest := vars[0], vars[1:]
	numVars := d.NumVars()

	pv := NewPartialValuation(numVars)
	pv.Set(v, false)
	lo, err := cofactor(d, pv)
	if err != nil {
		return Diagram{}, err
	}
	pv.Set(v, true)
	hi, err := cofactor(d, pv)
	if err != nil {
		return Diagram{}, err
	}

	// loAvailable holds, per assignment of the non-picked variables, iff
	// v = false can still be completed over the remaining picked ones.
	loAvailable, err := Project(lo, rest)
	if err != nil {
		return Diagram{}, err
	}
	chooseLow := loAvailable
	if rng != nil {
		hiAvailable, err := Project(hi, rest)
		if err != nil {
			return Diagram{}, err
		}
		contested, err := Apply(OpAnd, loAvailable, hiAvailable)
		if err != nil {
			return Diagram{}, err
		}
		if !contested.IsFalse() && coinflip(rng) {
			// Prefer v = true inside the contested region this round.
			chooseLow, err = Apply(OpDiff, loAvailable, hiAvailable)
			if err != nil {
				return Diagram{}, err
			}
		}
	}

	lowBranch, err := Apply(OpAnd, lo, chooseLow)
	if err != nil {
		return Diagram{}, err
	}
	highBranch, err := Apply(OpDiff, hi, chooseLow)
	if err != nil {
		return Diagram{}, err
	}
	lowBranch, err = pickRec(lowBranch, rest, rng)
	if err != nil {
		return Diagram{}, err
	}
	highBranch, err = pickRec(highBranch, rest, rng)
	if err != nil {
		return Diagram{}, err
	}

	notV, err := MkNotVar(numVars, v)
	if err != nil {
		return Diagram{}, err
	}
	litV, err := MkVar(numVars, v)
	if err != nil {
		return Diagram{}, err
	}
	lowBranch, err = Apply(OpAnd, lowBranch, notV)
	if err != nil {
		return Diagram{}, err
	}
	highBranch, err = Apply(OpAnd, highBranch, litV)
	if err != nil {
		return Diagram{}, err
	}
	return Apply(OpOr, lowBranch, highBranch)
}

// sortedPickVars validates vars and returns them deduplicated in ascending
// order, the order pickRec consumes them in.
func sortedPickVars(numVars int, vars []Variable) ([]Variable, error) {
	set, err := quantifiedSet(numVars, vars)
	if err != nil {
		return nil, err
	}
	ordered := make([]Variable, 0, len(vars))
	for v, in := range set {
		if in {
			ordered = append(ordered, Variable(v))
		}
	}
	return ordered, nil
}

// VarPick retains, for each satisfying assignment of the remaining
// variables, exactly one value of v: the result still tests v, but only the
// chosen value of it satisfies the result, preferring v = false wherever d
// allows it. It implies d, projects to the same function of the remaining
// variables, and its two cofactors at v are mutually exclusive over them.
func VarPick(d Diagram, v Variable) (Diagram, error) {
	return Pick(d, []Variable{v})
}

// Pick restricts every variable in vars the way VarPick does, preferring
// the false value whenever both are available. Variables d never tests
// along a path are forced to false there, so the result is functional in
// vars even where d did not depend on them.
func Pick(d Diagram, vars []Variable) (Diagram, error) {
	ordered, err := sortedPickVars(d.NumVars(), vars)
	if err != nil {
		return Diagram{}, err
	}
	return pickRec(d, ordered, nil)
}

// VarPickRandom is the randomized counterpart of VarPick: wherever both
// values of v remain available for an assignment of the rest, rng decides
// which one is kept.
func VarPickRandom(d Diagram, v Variable, rng RandSource) (Diagram, error) {
	return PickRandom(d, []Variable{v}, rng)
}

// PickRandom is the randomized counterpart of Pick.
func PickRandom(d Diagram, vars []Variable, rng RandSource) (Diagram, error) {
	ordered, err := sortedPickVars(d.NumVars(), vars)
	if err != nil {
		return Diagram{}, err
	}
	return pickRec(d, ordered, rng)
}
