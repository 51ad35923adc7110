// Package executor implements the execution stage of the filemap
// pipeline. It consumes the ordered action list the planner committed
// to and performs (or in dry-run mode, merely reports) each action.
//
// Execution is fail-fast without rollback: the first failing action
// halts the run, and actions already performed stay performed. Silent
// rollback after partial external mutation (a move that already deleted
// its source, say) can itself be unsafe, so none is attempted.
package executor
