package types

import "io/fs"

// FS is the filesystem interface required by the planner (directory
// listing) and the executor (mutation). Implementations live in
// pkg/filesystem; tests may substitute an in-memory filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
}
