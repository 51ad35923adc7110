package planner

import (
	"path/filepath"

	"github.com/arthur-debert/filemap/pkg/logging"
	"github.com/arthur-debert/filemap/pkg/rules"
	"github.com/arthur-debert/filemap/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the planner
type Options struct {
	// SourceDir is the flat directory scanned for regular files.
	SourceDir string

	// DestDir is the root under which rule destinations are resolved.
	DestDir string

	// FS is the filesystem used for directory listing only; the planner
	// performs no mutation.
	FS types.FS
}

// Planner turns parsed rules plus a source directory listing into an
// ordered list of fully resolved actions. No I/O beyond the listing
// happens here; intermediate directories implied by destinations are
// recorded in the actions, not created.
type Planner struct {
	sourceDir string
	destDir   string
	fs        types.FS
	logger    zerolog.Logger
}

// New creates a new planner instance
func New(opts Options) *Planner {
	return &Planner{
		sourceDir: opts.SourceDir,
		destDir:   opts.DestDir,
		fs:        opts.FS,
		logger:    logging.GetLogger("planner"),
	}
}

// Plan produces the ordered action list for the given rules.
//
// Rules are visited in declaration order; for each rule, files are
// visited in lexicographic order, which makes the output deterministic.
// A file matched by several rules yields one action per matching rule,
// in rule order; nothing is deduplicated.
func (p *Planner) Plan(ruleSet []rules.Rule) ([]types.Action, error) {
	files, err := ListSourceFiles(p.fs, p.sourceDir)
	if err != nil {
		return nil, err
	}

	var actions []types.Action
	for _, rule := range ruleSet {
		for _, name := range files {
			if !rule.Matches(name) {
				continue
			}
			action := types.Action{
				Kind:   rule.Kind,
				Source: filepath.Join(p.sourceDir, name),
				Dest:   filepath.Join(p.destDir, rule.Destination, name),
			}
			p.logger.Debug().
				Int("ruleLine", rule.Line).
				Str("file", name).
				Str("kind", string(action.Kind)).
				Str("dest", action.Dest).
				Msg("Planned action")
			actions = append(actions, action)
		}
	}

	p.logger.Info().
		Int("ruleCount", len(ruleSet)).
		Int("fileCount", len(files)).
		Int("actionCount", len(actions)).
		Msg("Planning complete")

	return actions, nil
}
