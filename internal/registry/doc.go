// Package registry holds the immutable, validated knowledge base for one
// application instance: the compound universe, the rule graph indexed by
// output compound, and the starting-material set.
//
// During application startup the registry is populated from a config.Model
// and then validated so that every rule and starting material refers to a
// known compound, preventing a wide class of runtime errors in the planner.
// After validation the registry is read-only; concurrent readers need no
// coordination.
package registry
