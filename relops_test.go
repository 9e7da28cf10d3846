// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import (
	"math/rand"
	"testing"
)

// mkSmallTestDiagram builds B = v2 && !v3 over 5 variables.
func mkSmallTestDiagram(t *testing.T) Diagram {
	t.Helper()
	pv := NewPartialValuation(5)
	pv.Set(2, true)
	pv.Set(3, false)
	b, err := MkCube(5, pv)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSmallDiagramShape(t *testing.T) {
	b := mkSmallTestDiagram(t)
	if b.Size() != 4 {
		t.Fatalf("size(B) = %d, want 4", b.Size())
	}
	if b.Root() != 3 {
		t.Fatalf("root(B) = %d, want 3", b.Root())
	}
}

func TestProjectNothing(t *testing.T) {
	b := mkSmallTestDiagram(t)
	got, err := Project(b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(got, b) {
		t.Fatalf("project(B, {}) = %v, want B = %v", got, b)
	}
}

func TestProjectAllVariables(t *testing.T) {
	b := mkSmallTestDiagram(t)
	got, err := Project(b, []Variable{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsTrue() {
		t.Fatalf("project(B, {0..4}) = %v, want True", got)
	}
}

func TestPickForcesUntestedVariables(t *testing.T) {
	b := mkSmallTestDiagram(t)
	got, err := Pick(b, []Variable{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	pv := NewPartialValuation(5)
	pv.Set(2, true)
	pv.Set(3, false)
	pv.Set(4, false)
	want, err := MkCube(5, pv)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(got, want) {
		t.Fatalf("pick(B,{v3,v4}) = %v, want %v", got, want)
	}
}

// mkTestMirror builds C = (v0 => (v3<=>v4)) && (!v0 => !(v3<=>v4)) over
// 5 variables.
func mkTestMirror(t *testing.T) Diagram {
	t.Helper()
	v0 := mustVar(t, 5, 0)
	v3 := mustVar(t, 5, 3)
	v4 := mustVar(t, 5, 4)
	biimp34, err := Biimp(v3, v4)
	if err != nil {
		t.Fatal(err)
	}
	left, err := Imp(v0, biimp34)
	if err != nil {
		t.Fatal(err)
	}
	right, err := Imp(Not(v0), Not(biimp34))
	if err != nil {
		t.Fatal(err)
	}
	c, err := And(left, right)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestPickMirroredEquivalence(t *testing.T) {
	c := mkTestMirror(t)
	got, err := Pick(c, []Variable{3, 4})
	if err != nil {
		t.Fatal(err)
	}

	v0 := mustVar(t, 5, 0)
	nv3nv4, err := MkCubeLiterals(5, Literal{3, false}, Literal{4, false})
	if err != nil {
		t.Fatal(err)
	}
	left, err := Imp(v0, nv3nv4)
	if err != nil {
		t.Fatal(err)
	}
	nv3v4, err := MkCubeLiterals(5, Literal{3, false}, Literal{4, true})
	if err != nil {
		t.Fatal(err)
	}
	right, err := Imp(Not(v0), nv3v4)
	if err != nil {
		t.Fatal(err)
	}
	want, err := And(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(got, want) {
		t.Fatalf("pick(C,{v3,v4}) = %v, want %v", got, want)
	}
}

func TestPickAlreadyFunctional(t *testing.T) {
	c := mkTestMirror(t)
	got, err := Pick(c, []Variable{4})
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(got, c) {
		t.Fatalf("pick(C,{v4}) = %v, want C = %v (already functional in v4)", got, c)
	}
}

// TestVarPickGuards checks VarPick on A = (v0 => (v1 <=> v2)) &&
// (!v0 => !(v1 <=> v4)): wherever v0 = false satisfies A it is kept, and
// v0 = true survives only for assignments of the rest that no v0 = false
// model covers.
func TestVarPickGuards(t *testing.T) {
	a := mkTestGuards(t)
	got, err := VarPick(a, 0)
	if err != nil {
		t.Fatal(err)
	}

	v0 := mustVar(t, 5, 0)
	v1 := mustVar(t, 5, 1)
	v2 := mustVar(t, 5, 2)
	v4 := mustVar(t, 5, 4)
	biimp12, err := Biimp(v1, v2)
	if err != nil {
		t.Fatal(err)
	}
	biimp24, err := Biimp(v2, v4)
	if err != nil {
		t.Fatal(err)
	}
	biimp14, err := Biimp(v1, v4)
	if err != nil {
		t.Fatal(err)
	}
	inner, err := And(biimp12, biimp24)
	if err != nil {
		t.Fatal(err)
	}
	left, err := Imp(v0, inner)
	if err != nil {
		t.Fatal(err)
	}
	right, err := Imp(Not(v0), Not(biimp14))
	if err != nil {
		t.Fatal(err)
	}
	want, err := And(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(got, want) {
		t.Fatalf("var_pick(v0, A) = %v, want %v", got, want)
	}
}

func TestVarSelectOutOfRange(t *testing.T) {
	d := MkTrue(3)
	if _, err := VarSelect(d, 5, true); err == nil {
		t.Fatal("expected ErrVariableRange, got nil")
	}
}

func TestProjectDuplicateVariable(t *testing.T) {
	d := MkTrue(3)
	if _, err := Project(d, []Variable{0, 0}); err == nil {
		t.Fatal("expected ErrDuplicateVariable, got nil")
	}
}

// TestPickSoundnessAndFunctionality checks that pick(vars, A) implies A,
// projects to the same function of the remaining variables as A, and that
// for any fixed outer completion at most one vars-completion satisfies the
// result.
func TestPickSoundnessAndFunctionality(t *testing.T) {
	a := mkTestConjunction(t)
	vars := []Variable{2, 3}
	picked, err := Pick(a, vars)
	if err != nil {
		t.Fatal(err)
	}

	implied, err := Imp(picked, a)
	if err != nil {
		t.Fatal(err)
	}
	if !implied.IsTrue() {
		t.Fatalf("pick(A) does not imply A")
	}

	projectedPick, err := Project(picked, vars)
	if err != nil {
		t.Fatal(err)
	}
	projectedA, err := Project(a, vars)
	if err != nil {
		t.Fatal(err)
	}
	if !sameShape(projectedPick, projectedA) {
		t.Fatalf("exists(vars, pick(vars,A)) != exists(vars, A)")
	}

	for _, outer := range allValuations(3) {
		matches := 0
		for _, inner := range allValuations(len(vars)) {
			full := mergeValuations(5, outer, []Variable{0, 1, 4}, inner, vars)
			ok, err := evalAt(picked, full)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				matches++
			}
		}
		if matches > 1 {
			t.Fatalf("pick functionality violated: %d completions for outer %v", matches, outer)
		}
	}
}

// TestPickRandomInvariants checks PickRandom's documented invariants over a
// handful of seeds: the result implies A, and is functional per outer
// completion exactly like Pick.
func TestPickRandomInvariants(t *testing.T) {
	a := mkTestConjunction(t)
	vars := []Variable{2, 3}

	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		picked, err := PickRandom(a, vars, rng)
		if err != nil {
			t.Fatal(err)
		}
		implied, err := Imp(picked, a)
		if err != nil {
			t.Fatal(err)
		}
		if !implied.IsTrue() {
			t.Fatalf("seed %d: pick_random(A) does not imply A", seed)
		}
		for _, outer := range allValuations(3) {
			matches := 0
			for _, inner := range allValuations(len(vars)) {
				full := mergeValuations(5, outer, []Variable{0, 1, 4}, inner, vars)
				ok, err := evalAt(picked, full)
				if err != nil {
					t.Fatal(err)
				}
				if ok {
					matches++
				}
			}
			if matches > 1 {
				t.Fatalf("seed %d: pick_random functionality violated: %d completions for outer %v", seed, matches, outer)
			}
		}
	}
}

// ************************************************************
// small evaluation helpers shared by the properties above

func allValuations(n int) []Valuation {
	if n == 0 {
		return []Valuation{{}}
	}
	var out []Valuation
	for i := 0; i < 1<<uint(n); i++ {
		v := make(Valuation, n)
		for b := 0; b < n; b++ {
			v[b] = (i>>uint(b))&1 == 1
		}
		out = append(out, v)
	}
	return out
}

func mergeValuations(numVars int, outer Valuation, outerVars []Variable, inner Valuation, innerVars []Variable) Valuation {
	full := make(Valuation, numVars)
	for i, v := range outerVars {
		full[v] = outer[i]
	}
	for i, v := range innerVars {
		full[v] = inner[i]
	}
	return full
}

func evalAt(d Diagram, val Valuation) (bool, error) {
	p := d.Root()
	for !p.isTerminal() {
		v := d.Var(p)
		if val[v] {
			p = d.High(p)
		} else {
			p = d.Low(p)
		}
	}
	return p == PtrTrue, nil
}
