// SPDX-License-Identifier: MIT
// Package: zvertex/vertex
//
// options.go — functional options for NewSampler.
//
// Contract:
//   • Options are functional (type Option func(*samplerConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Sampler methods never panic.
//   • Later options override earlier ones.

package vertex

import (
	"fmt"
	"math"
)

// Option customizes a Sampler before it is built.
type Option func(*samplerConfig)

// samplerConfig aggregates all Sampler knobs. Copied by value into Sampler.
type samplerConfig struct {
	table    LimitTable
	scale    float64 // divisor applied to the interpolated value
	target   string  // "" ⇒ target-unaware
	fallback float64 // result for a non-matching target
}

// newSamplerConfig applies opts in order over the defaults:
// SingleTarget table, unit scale, target-unaware.
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		table: SingleTargetTable(),
		scale: unitScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTable sets the limit rows. Panics if rows is empty or any row has
// Low >= High (or a non-finite bound).
func WithTable(rows ...Limits) Option {
	if len(rows) == 0 {
		panic("vertex: WithTable() needs at least one row")
	}
	for i, r := range rows {
		if math.IsNaN(r.Low) || math.IsInf(r.Low, 0) || math.IsNaN(r.High) || math.IsInf(r.High, 0) {
			panic(fmt.Sprintf("vertex: WithTable row %d has a non-finite bound", i+1))
		}
		if r.Low >= r.High {
			panic(fmt.Sprintf("vertex: WithTable row %d has Low >= High (%v >= %v)", i+1, r.Low, r.High))
		}
	}
	table := append(LimitTable(nil), rows...)
	return func(c *samplerConfig) {
		c.table = table
	}
}

// WithScale divides every interpolated value by div (e.g. 10 for mm → cm).
// Panics unless div is finite and positive.
func WithScale(div float64) Option {
	if !(div > 0) || math.IsInf(div, 0) {
		panic(fmt.Sprintf("vertex: WithScale(%v) must be finite and > 0", div))
	}
	return func(c *samplerConfig) {
		c.scale = div
	}
}

// WithTarget makes the Sampler target-aware: only requests naming target
// (exact match) are interpolated; every other target returns fallback.
// Panics on an empty target name.
func WithTarget(target string, fallback float64) Option {
	if target == "" {
		panic("vertex: WithTarget(\"\") needs a target name")
	}
	return func(c *samplerConfig) {
		c.target = target
		c.fallback = fallback
	}
}
