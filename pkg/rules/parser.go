package rules

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/filemap/pkg/errors"
	"github.com/arthur-debert/filemap/pkg/logging"
	"github.com/arthur-debert/filemap/pkg/types"
)

// Parse turns a single rule line into a Rule. Blank lines yield (nil, nil).
//
// Grammar per line:
//
//	c /<regex>/<relative-destination>
//	m /<regex>/<relative-destination>
//
// Whitespace around the kind marker is insignificant. The regex body runs
// until the next unescaped '/'. The destination is trimmed of surrounding
// whitespace; interior whitespace and path separators are kept verbatim.
func Parse(line string, lineNumber int) (*Rule, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, nil
	}

	var kind types.RuleKind
	switch trimmed[0] {
	case 'c':
		kind = types.KindCopy
	case 'm':
		kind = types.KindMove
	default:
		return nil, errors.Newf(errors.ErrUnknownRuleKind,
			"line %d: unknown rule kind %q (want 'c' or 'm')", lineNumber, string(trimmed[0])).
			WithDetail("line", lineNumber)
	}

	rest := strings.TrimLeft(trimmed[1:], " \t")
	if rest == "" || rest[0] != '/' {
		return nil, errors.Newf(errors.ErrInvalidRegex,
			"line %d: expected '/' after rule kind", lineNumber).
			WithDetail("line", lineNumber)
	}

	body, remainder, ok := splitRegexBody(rest[1:])
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidRegex,
			"line %d: unterminated regex (missing closing '/')", lineNumber).
			WithDetail("line", lineNumber)
	}

	pattern, err := regexp.Compile(body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRegex,
			"line %d: unable to compile regex %q", lineNumber, body).
			WithDetail("line", lineNumber).
			WithDetail("pattern", body)
	}

	dest := strings.TrimSpace(remainder)
	if dest == "" {
		return nil, errors.Newf(errors.ErrInvalidDestination,
			"line %d: destination is empty", lineNumber).
			WithDetail("line", lineNumber)
	}
	if filepath.IsAbs(dest) {
		return nil, errors.Newf(errors.ErrInvalidDestination,
			"line %d: destination %q must be relative", lineNumber, dest).
			WithDetail("line", lineNumber).
			WithDetail("destination", dest)
	}

	return &Rule{
		Kind:        kind,
		Pattern:     pattern,
		Destination: dest,
		Line:        lineNumber,
	}, nil
}

// splitRegexBody splits s at the first unescaped '/'. Escapes are kept
// verbatim in the body so the regex engine sees them unchanged.
func splitRegexBody(s string) (body, remainder string, ok bool) {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '/':
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// ParseAll reads rule lines from r and returns all parsed rules.
// Parsing is all-or-nothing: the first failing line aborts with zero rules.
func ParseAll(r io.Reader) ([]Rule, error) {
	logger := logging.GetLogger("rules.parser")

	var parsed []Rule
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		rule, err := Parse(scanner.Text(), lineNumber)
		if err != nil {
			return nil, err
		}
		if rule == nil {
			continue
		}
		logger.Debug().
			Int("line", rule.Line).
			Str("kind", string(rule.Kind)).
			Str("pattern", rule.Pattern.String()).
			Str("destination", rule.Destination).
			Msg("Parsed rule")
		parsed = append(parsed, *rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesFileRead, "error reading rules")
	}

	logger.Debug().Int("ruleCount", len(parsed)).Msg("Parsed all rules")
	return parsed, nil
}

// LoadFile reads and parses a rules file through the given filesystem.
func LoadFile(fsys types.FS, path string) ([]Rule, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesFileRead,
			"unable to read rules file %s", path)
	}
	return ParseAll(bytes.NewReader(data))
}
