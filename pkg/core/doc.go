// Package core wires the filemap pipeline together: rule parsing,
// action planning, and action execution, in that order, with the
// guarantee that no filesystem mutation happens unless both earlier
// stages succeeded in full.
package core
