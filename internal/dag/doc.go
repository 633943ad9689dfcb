// Package dag is a small directed acyclic graph used to order the host's
// bundle declarations and compute their dependency closures.
//
// Nodes are identified by string. An edge from A to B records that B depends
// on A. Iteration is deterministic: ties are broken by the order in which
// nodes were added.
package dag
