// Copyright (c) 2026 The bddkit Authors
//
// MIT License

/*
Package robdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (ROBDD), a canonical, array-packed representation of a Boolean
function over a fixed, totally ordered set of variables.

Basics

Each Diagram has a fixed number of variables, NumVars, declared when it is
built, and each variable is represented by an (integer) index in the interval
[0..NumVars), called its level; smaller indices sit closer to the root. A
Diagram is an ordered, append-only array of node records laid out in DFS
postorder, so the root is always the last element of the array. Pointer 0
(respectively 1) always addresses the constant False (respectively True).

Unlike the node pool used in more traditional BDD packages, a Diagram does not
live inside a shared, garbage-collected table. Each Diagram owns its own node
array outright: two Diagrams never share storage, constructing one never
mutates another, and a Diagram is safe to read from multiple goroutines once
it has been returned by a constructor. The price is that common sub-diagrams
across independent Diagrams are never shared, and that every operation
(Apply, a relational operator, DNF construction, ...) allocates a fresh node
array and a transient hash-consing table for the duration of the call; there
is no resizing, reference counting, or garbage collection to speak of,
because nothing outlives the call that produced it.

Use of build tags

Compiling with the `debug` build tag logs every error returned by a
constructor or operator and turns a call of Diagram.Var on a terminal
Pointer into a panic, instead of the silent behaviour used in the default
build (which returns the terminal sentinel NumVars).
*/
package robdd
