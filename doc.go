// Package zvertex computes simulated interaction-vertex positions along the
// beam axis of a liquid-deuterium cryotarget, for event-simulation pipelines.
//
// Layout:
//
//	vertex/             — limit tables, Sampler, argument parsing, output formatting
//	cmd/vertex/         — single-target command: vertex <variation 1-3> <fraction>
//	cmd/vertex-double/  — double-target command: vertex-double <variation 1-5> <fraction> <target>
//	internal/cli/       — shared process runner (stdout value, stderr diagnostic)
//
// Quick example:
//
//	$ vertex 2 1.0
//	9.5
//	$ vertex-double 3 0.0 H2
//	8.0
//
//	go install github.com/katalvlaran/zvertex/cmd/...
package zvertex
