package executor

import (
	"path/filepath"

	"github.com/arthur-debert/filemap/pkg/errors"
	"github.com/arthur-debert/filemap/pkg/filesystem"
	"github.com/arthur-debert/filemap/pkg/logging"
	"github.com/arthur-debert/filemap/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	Logger zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor interprets the action list produced by the planner. It is a
// thin loop over fully resolved actions: no path resolution happens here.
type Executor struct {
	dryRun bool
	logger zerolog.Logger
	fs     types.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
		fs:     fs,
	}
}

// Execute processes actions strictly in planner order and returns a
// result per action. The first failure halts execution immediately;
// actions already performed are not undone, and the returned error
// identifies the failing action's index and paths. In dry-run mode
// every action is reported as skipped and the filesystem is untouched.
func (e *Executor) Execute(actions []types.Action) ([]types.ActionResult, error) {
	results := make([]types.ActionResult, 0, len(actions))

	for i, action := range actions {
		e.logger.Debug().
			Int("index", i).
			Str("kind", string(action.Kind)).
			Str("source", action.Source).
			Str("dest", action.Dest).
			Bool("dry_run", e.dryRun).
			Msg("Executing action")

		if e.dryRun {
			e.logger.Info().Str("action", action.Description()).Msg("Would be performed (dry run)")
			results = append(results, types.ActionResult{
				Action: action,
				Status: types.StatusSkipped,
			})
			continue
		}

		if err := e.executeAction(action); err != nil {
			ferr := err.WithDetail("actionIndex", i)
			e.logger.Error().
				Err(ferr).
				Int("index", i).
				Str("action", action.Description()).
				Msg("Action execution failed")

			results = append(results, types.ActionResult{
				Action: action,
				Status: types.StatusFailed,
				Err:    ferr,
			})
			return results, ferr
		}

		e.logger.Info().Str("action", action.Description()).Msg("Action performed")
		results = append(results, types.ActionResult{
			Action: action,
			Status: types.StatusDone,
		})
	}

	return results, nil
}

// executeAction performs a single copy or move. A move is a copy
// followed by removal of the source, and the source is only removed
// after the copy succeeded.
func (e *Executor) executeAction(action types.Action) *errors.FilemapError {
	destDir := filepath.Dir(action.Dest)
	if err := e.fs.MkdirAll(destDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreateFailed,
			"unable to create destination directory %s", destDir).
			WithDetail("dest", action.Dest)
	}

	if err := e.copyFile(action.Source, action.Dest); err != nil {
		return err
	}

	if action.Kind == types.KindMove {
		if err := e.fs.Remove(action.Source); err != nil {
			return errors.Wrapf(err, errors.ErrDeleteFailed,
				"unable to remove source file %s after copy", action.Source).
				WithDetail("source", action.Source)
		}
	}

	return nil
}

// copyFile copies src to dst, preserving the source file's mode.
func (e *Executor) copyFile(src, dst string) *errors.FilemapError {
	info, err := e.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed,
			"unable to stat source file %s", src).
			WithDetail("source", src)
	}

	data, err := e.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed,
			"unable to read source file %s", src).
			WithDetail("source", src)
	}

	if err := e.fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrCopyFailed,
			"unable to copy %s to %s", src, dst).
			WithDetail("source", src).
			WithDetail("dest", dst)
	}

	return nil
}
