package dircreator

import "github.com/bitrise-io/go-utils/pathutil"

// DirCreator ...
type DirCreator interface {
	EnsureDir(dir string) error
}

type dirCreator struct{}

// NewDirCreator ...
func NewDirCreator() DirCreator {
	return dirCreator{}
}

// EnsureDir creates dir and its missing parents, an existing dir is left untouched.
func (c dirCreator) EnsureDir(dir string) error {
	return pathutil.EnsureDirExist(dir)
}
