// Package planner implements the planning stage of the filemap
// pipeline: matching source files against rules and producing the
// ordered, fully resolved action list the executor interprets.
package planner
