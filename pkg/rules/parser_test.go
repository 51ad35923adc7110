package rules_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/filemap/pkg/errors"
	"github.com/arthur-debert/filemap/pkg/filesystem"
	"github.com/arthur-debert/filemap/pkg/rules"
	"github.com/arthur-debert/filemap/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidRules(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind types.RuleKind
		wantPat  string
		wantDest string
	}{
		{
			name:     "copy rule",
			line:     `c /\.pdf$/Books`,
			wantKind: types.KindCopy,
			wantPat:  `\.pdf$`,
			wantDest: "Books",
		},
		{
			name:     "move rule",
			line:     `m/lime/Lime Files`,
			wantKind: types.KindMove,
			wantPat:  "lime",
			wantDest: "Lime Files",
		},
		{
			name:     "leading and trailing whitespace",
			line:     "  c  /report/ Reports/2024  ",
			wantKind: types.KindCopy,
			wantPat:  "report",
			wantDest: "Reports/2024",
		},
		{
			name:     "escaped slash stays in pattern",
			line:     `c /a\/b/nested`,
			wantKind: types.KindCopy,
			wantPat:  `a\/b`,
			wantDest: "nested",
		},
		{
			name:     "multi-component destination",
			line:     `m /\.iso$/images/disk isos`,
			wantKind: types.KindMove,
			wantPat:  `\.iso$`,
			wantDest: "images/disk isos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := rules.Parse(tt.line, 1)
			require.NoError(t, err)
			require.NotNil(t, rule)

			assert.Equal(t, tt.wantKind, rule.Kind)
			assert.Equal(t, tt.wantPat, rule.Pattern.String())
			assert.Equal(t, tt.wantDest, rule.Destination)
			assert.Equal(t, 1, rule.Line)
		})
	}
}

func TestParseBlankLine(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		rule, err := rules.Parse(line, 3)
		assert.NoError(t, err)
		assert.Nil(t, rule)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCode errors.ErrorCode
	}{
		{"unknown kind marker", "x /foo/Bar", errors.ErrUnknownRuleKind},
		{"missing slash after kind", "c foo Bar", errors.ErrInvalidRegex},
		{"unterminated regex", "c /foo bar", errors.ErrInvalidRegex},
		{"uncompilable regex", "c /(/Books", errors.ErrInvalidRegex},
		{"empty destination", "c /foo/   ", errors.ErrInvalidDestination},
		{"absolute destination", "m /foo//etc/Books", errors.ErrInvalidDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := rules.Parse(tt.line, 7)
			require.Error(t, err)
			assert.Nil(t, rule)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
			assert.Contains(t, err.Error(), "line 7")

			details := errors.GetErrorDetails(err)
			require.NotNil(t, details)
			assert.Equal(t, 7, details["line"])
		})
	}
}

func TestParseAll(t *testing.T) {
	input := strings.Join([]string{
		`c /\.pdf$/Books`,
		"",
		`m /\.log$/logs/archive`,
	}, "\n")

	parsed, err := rules.ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, types.KindCopy, parsed[0].Kind)
	assert.Equal(t, 1, parsed[0].Line)
	assert.Equal(t, types.KindMove, parsed[1].Kind)
	assert.Equal(t, 3, parsed[1].Line)
}

func TestParseAllIsAllOrNothing(t *testing.T) {
	input := strings.Join([]string{
		`c /\.pdf$/Books`,
		`c /(/broken`,
		`m /\.log$/logs`,
	}, "\n")

	parsed, err := rules.ParseAll(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, parsed)
	assert.Equal(t, errors.ErrInvalidRegex, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadFile(t *testing.T) {
	memFS := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFS, "rules.txt",
		[]byte("c /\\.pdf$/Books\nm /lime/Lime Files\n"), 0644))
	fsys := filesystem.NewAferoFS(memFS)

	parsed, err := rules.LoadFile(fsys, "rules.txt")
	require.NoError(t, err)
	assert.Len(t, parsed, 2)
}

func TestLoadFileMissing(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	parsed, err := rules.LoadFile(fsys, "no-such-rules.txt")
	require.Error(t, err)
	assert.Nil(t, parsed)
	assert.Equal(t, errors.ErrRulesFileRead, errors.GetErrorCode(err))
}

func TestRuleMatchesBareName(t *testing.T) {
	rule, err := rules.Parse("c /^lime/Lime Files", 1)
	require.NoError(t, err)

	assert.True(t, rule.Matches("lime.txt"))
	assert.False(t, rule.Matches("sublime.txt"))
}
