package rules

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/filemap/pkg/types"
)

// Rule is a declarative copy-or-move instruction keyed by a file-name
// regular expression and a relative destination path. Rules are built
// only by the parser; the pattern is always a successfully compiled
// regexp, so matching at plan time never re-validates.
type Rule struct {
	// Kind says whether matched files are copied or moved.
	Kind types.RuleKind

	// Pattern is matched against bare file names, never full paths.
	Pattern *regexp.Regexp

	// Destination is a relative path under the destination root.
	// It may contain multiple components and interior whitespace.
	Destination string

	// Line is the 1-based line number this rule was parsed from.
	Line int
}

// Matches reports whether the given bare file name satisfies the rule.
func (r Rule) Matches(name string) bool {
	return r.Pattern.MatchString(name)
}

// String returns a compact representation useful in logs.
func (r Rule) String() string {
	return fmt.Sprintf("%s /%s/ -> %s", r.Kind, r.Pattern.String(), r.Destination)
}
