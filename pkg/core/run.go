package core

import (
	"github.com/arthur-debert/filemap/pkg/errors"
	"github.com/arthur-debert/filemap/pkg/executor"
	"github.com/arthur-debert/filemap/pkg/filesystem"
	"github.com/arthur-debert/filemap/pkg/logging"
	"github.com/arthur-debert/filemap/pkg/planner"
	"github.com/arthur-debert/filemap/pkg/rules"
	"github.com/arthur-debert/filemap/pkg/types"
)

// RunOptions carries the full configuration for one run. Everything is
// explicit: no stage reads ambient process state.
type RunOptions struct {
	// RulesFile is a path to a rules file, one rule per line.
	// Mutually exclusive with InlineRule.
	RulesFile string

	// InlineRule is a single rule given directly on the command line.
	InlineRule string

	// SourceDir is the flat directory scanned for regular files.
	SourceDir string

	// DestDir is the root under which rule destinations are resolved.
	DestDir string

	// DryRun reports intended actions without mutating the filesystem.
	DryRun bool

	// FS overrides the filesystem; nil means the OS filesystem.
	FS types.FS
}

// RunResult holds everything a run produced, for reporting.
type RunResult struct {
	Rules   []rules.Rule
	Actions []types.Action
	Results []types.ActionResult
	DryRun  bool
}

// Run drives the three-stage pipeline: parse all rules, plan all
// actions, execute all actions. A failure in parsing or planning
// returns before the executor is ever constructed, so no filesystem
// change can happen until every rule has been validated and every
// action computed. Execution failures stop the run mid-list; the
// partial results are returned alongside the error.
func Run(opts RunOptions) (*RunResult, error) {
	logger := logging.GetLogger("core.run")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	ruleSet, err := loadRules(fs, opts)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("ruleCount", len(ruleSet)).Msg("Rules parsed")

	p := planner.New(planner.Options{
		SourceDir: opts.SourceDir,
		DestDir:   opts.DestDir,
		FS:        fs,
	})
	actions, err := p.Plan(ruleSet)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Rules:   ruleSet,
		Actions: actions,
		DryRun:  opts.DryRun,
	}

	e := executor.New(executor.Options{
		DryRun: opts.DryRun,
		Logger: logging.GetLogger("executor"),
		FS:     fs,
	})
	results, err := e.Execute(actions)
	result.Results = results
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("actionCount", len(actions)).
		Bool("dryRun", opts.DryRun).
		Msg("Run complete")

	return result, nil
}

// loadRules resolves the rules-file-xor-inline-rule choice.
func loadRules(fs types.FS, opts RunOptions) ([]rules.Rule, error) {
	switch {
	case opts.RulesFile != "" && opts.InlineRule != "":
		return nil, errors.New(errors.ErrInvalidInput,
			"a rules file and an inline rule are mutually exclusive")
	case opts.RulesFile != "":
		return rules.LoadFile(fs, opts.RulesFile)
	case opts.InlineRule != "":
		rule, err := rules.Parse(opts.InlineRule, 1)
		if err != nil {
			return nil, err
		}
		if rule == nil {
			return nil, errors.New(errors.ErrInvalidInput, "inline rule is empty")
		}
		return []rules.Rule{*rule}, nil
	default:
		return nil, errors.New(errors.ErrInvalidInput,
			"no rules given: pass a rules file (-r) or an inline rule")
	}
}
