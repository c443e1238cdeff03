// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); messages are not a contract.
//   • Context (edge index, ids) is attached with errors.Wrapf at the failure
//     site and "FromEdgeList" is prefixed once at the API boundary.
//   • Construction never panics on malformed input: every validation failure
//     is an ordinary returned error.

package builder

import "github.com/cockroachdb/errors"

// ErrMultipleParents indicates that the edge list assigns two or more incoming
// edges to the same destination id (a general graph, not a tree).
// Usage: if errors.Is(err, ErrMultipleParents) { /* reject input */ }.
var ErrMultipleParents = errors.New("builder: node has multiple parents")

// ErrNoRootFound indicates that no node of the edge list is parent-less. This
// happens for an empty edge list and for inputs made only of cycles.
var ErrNoRootFound = errors.New("builder: no root found")

// ErrMultipleRootsFound indicates more than one parent-less node: the edge
// list describes a forest, not a single tree.
var ErrMultipleRootsFound = errors.New("builder: multiple roots found")

// ErrCycleDetected indicates that a single root exists but some nodes are not
// reachable from it. With at most one parent per node this only happens when
// those nodes form a cycle detached from the root.
var ErrCycleDetected = errors.New("builder: cycle detected")

// maxReportedIDs caps the ids listed in an error message.
const maxReportedIDs = 8

// MethodFromEdgeList is the context token prefixed to every FromEdgeList error.
const MethodFromEdgeList = "FromEdgeList"
