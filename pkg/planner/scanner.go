package planner

import (
	"sort"

	"github.com/arthur-debert/filemap/pkg/errors"
	"github.com/arthur-debert/filemap/pkg/logging"
	"github.com/arthur-debert/filemap/pkg/types"
)

// ListSourceFiles returns the bare names of the regular files in dir,
// sorted lexicographically. Directories and symlinks are excluded; the
// listing is non-recursive. An unreadable directory yields
// SOURCE_UNREADABLE.
func ListSourceFiles(fsys types.FS, dir string) ([]string, error) {
	logger := logging.GetLogger("planner.scanner")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceUnreadable,
			"unable to read source directory %s", dir).
			WithDetail("dir", dir)
	}

	var names []string
	for _, entry := range entries {
		// DirEntry.Type does not follow symlinks, so links to regular
		// files are excluded along with directories.
		if !entry.Type().IsRegular() {
			logger.Trace().Str("entry", entry.Name()).Msg("Skipping non-regular entry")
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	logger.Debug().
		Str("dir", dir).
		Int("fileCount", len(names)).
		Msg("Listed source files")

	return names, nil
}
