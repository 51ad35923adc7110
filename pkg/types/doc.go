// Package types defines the value types shared across the filemap
// pipeline: rule kinds, the fully resolved actions the planner produces,
// per-action execution results, and the filesystem interface the planner
// and executor depend on.
package types
