// Package mp models linear and mixed-integer mathematical programs.
//
// A program is a named, ordered collection of variables and constraints plus
// an objective. Client code accumulates these in a Builder; Build (or CopyOf)
// freezes the result into an Immutable snapshot that is safe to share across
// goroutines and to hand to a solving engine.
//
// Element types (Variable, Term, SumTerms, Constraint, Objective) are
// immutable values. A Variable is not owned by any program; the same variable
// may appear in several programs, which is why it must never change after
// construction.
//
// Views (ReadOnly, Named, BoolToInt) re-expose an existing program under
// altered semantics without copying its data.
package mp
