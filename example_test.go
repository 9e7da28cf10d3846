// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd_test

import (
	"fmt"

	"github.com/bddkit/robdd"
)

// This example builds a small Diagram and queries a satisfying assignment
// from it.
func Example_basic() {
	v0, _ := robdd.MkVar(5, 0)
	v2, _ := robdd.MkVar(5, 2)
	v3, _ := robdd.MkVar(5, 3)
	v4, _ := robdd.MkVar(5, 4)

	rhs, _ := robdd.Or(robdd.Not(v2), v3)
	a, _ := robdd.And(v0, rhs)
	a, _ = robdd.And(a, robdd.Not(v4))

	first, _ := robdd.FirstValuation(a)
	fmt.Println(first)
	// Output:
	// (1,0,0,0,0)
}

// This example existentially projects variables out of a Diagram and shows
// that the result is not the constant True and keeps the same NumVars.
func Example_project() {
	v2, _ := robdd.MkVar(5, 2)
	v3, _ := robdd.MkVar(5, 3)
	cube, _ := robdd.And(v2, robdd.Not(v3))

	projected, _ := robdd.Project(cube, []robdd.Variable{3, 4})
	fmt.Println(projected.IsTrue() == false, projected.NumVars())
	// Output:
	// true 5
}
