// Package rules implements the rule parsing stage of the filemap
// pipeline. It turns rule text (one rule per line) into validated Rule
// values carrying an already-compiled regular expression, so later
// stages never re-parse or re-validate patterns.
//
// Parsing a rule set is all-or-nothing: if any line fails, the whole
// set is invalid and no rules are returned.
package rules
