// Package solve defines the boundary between a mathematical program and an
// external solving engine: the Solver interface, the Status taxonomy, the
// Solution and Result types it reports back, and the typed Parameters store
// configuring a run.
//
// No optimization algorithm lives here. A Solver consumes an immutable
// program (or a read-only view of one) plus Parameters and produces a Result.
package solve
