// Package planner computes minimum-step synthesis routes over the rule
// graph held by a registry.
//
// The rule graph is an AND/OR graph: a compound may be producible by any
// one of several rules (OR), and a single rule requires all of its input
// compounds to be independently synthesizable (AND). The planner runs a
// memoized depth-first minimum-cost search with an explicit ancestor-path
// cycle guard, then extracts a concrete, dependency-ordered, deduplicated
// step sequence realizing the minimum.
//
// A Planner holds no mutable state between calls; the memo table lives in a
// per-call search value, so a single Planner is safe for concurrent use.
package planner
