// Package branchpath derives normalized artifact routing paths from
// source-control branch names.
//
// A branch name is split into normalized segments, segment 0 is translated
// through a deployment-channel table, and segments are joined with positional
// overrides and appends into the per-branch and per-channel folders the build
// pipeline routes artifacts to. All operations are pure functions over their
// explicit inputs.
package branchpath
