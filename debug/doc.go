// Package debug exposes the build-time debug flag.
//
// Building with the "debug" tag keeps logging enabled under `go test` and
// turns on extra diagnostics in other packages.
package debug
