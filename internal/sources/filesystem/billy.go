package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Factory returns a filesystem rooted at the provided directory.
type Factory func(rootDirectory string) billy.Filesystem

// OSFactory roots a go-billy OS filesystem at the provided directory.
func OSFactory(rootDirectory string) billy.Filesystem {
	return osfs.New(rootDirectory)
}

// BillyFileSystem implements the filesystem operations of the balance check on top of go-billy.
type BillyFileSystem struct {
	factory Factory
}

// NewOSFileSystem constructs a BillyFileSystem backed by the operating system.
func NewOSFileSystem() BillyFileSystem {
	return NewBillyFileSystem(OSFactory)
}

// NewBillyFileSystem constructs a BillyFileSystem using the provided factory.
func NewBillyFileSystem(factory Factory) BillyFileSystem {
	if factory == nil {
		factory = OSFactory
	}
	return BillyFileSystem{factory: factory}
}

// Abs resolves an absolute path with symbolic links evaluated, so that walks
// start from the link target. A path that does not exist is returned
// unresolved and left for Stat to report.
func (BillyFileSystem) Abs(path string) (string, error) {
	absolutePath, absError := filepath.Abs(path)
	if absError != nil {
		return "", absError
	}

	resolvedPath, resolveError := filepath.EvalSymlinks(absolutePath)
	if resolveError != nil {
		if errors.Is(resolveError, fs.ErrNotExist) {
			return absolutePath, nil
		}
		return "", resolveError
	}
	return resolvedPath, nil
}

// Stat retrieves file metadata.
func (fileSystem BillyFileSystem) Stat(path string) (fs.FileInfo, error) {
	return fileSystem.parentOf(path).Stat(filepath.Base(path))
}

// Open opens a file for reading.
func (fileSystem BillyFileSystem) Open(path string) (io.ReadCloser, error) {
	return fileSystem.parentOf(path).Open(filepath.Base(path))
}

func (fileSystem BillyFileSystem) parentOf(path string) billy.Filesystem {
	factory := fileSystem.factory
	if factory == nil {
		factory = OSFactory
	}
	return factory(filepath.Dir(filepath.Clean(path)))
}
