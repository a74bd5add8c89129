// Package mathprog provides a typed model for building and validating linear
// and mixed-integer mathematical programs before handing them to a solving
// engine.
//
// The core packages are:
//   - mp: element types (Variable, Term, SumTerms, Constraint, Objective),
//     the mutable Builder, the Immutable snapshot, and composable views
//   - solve: the solver boundary (Status, Solution, Result) and the typed
//     Parameters store
//
// mathprog does not implement any optimization algorithm itself; a program is
// handed to an external solve.Solver which reports back a solve.Result.
package mathprog

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
