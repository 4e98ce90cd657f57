package types

import "io/fs"

// FS abstracts the filesystem operations ren needs, so planning and
// execution can be tested against an in-memory filesystem.
type FS interface {
	// Stat returns file info for the named file
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns file info without following symlinks
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries
	ReadDir(name string) ([]fs.DirEntry, error)

	// Rename atomically moves oldpath to newpath
	Rename(oldpath, newpath string) error
}
