package balance_test

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

const memoryWorkspaceRootConstant = "/workspace"

type stubDiscoverer struct {
	sources            []string
	err                error
	receivedRoot       string
	receivedExtensions []string
}

func (discoverer *stubDiscoverer) DiscoverSources(rootDirectory string, extensions []string) ([]string, error) {
	discoverer.receivedRoot = rootDirectory
	discoverer.receivedExtensions = append([]string{}, extensions...)
	if discoverer.err != nil {
		return nil, discoverer.err
	}
	return discoverer.sources, nil
}

type stubFileInfo struct {
	name      string
	directory bool
}

func (info stubFileInfo) Name() string { return info.name }

func (info stubFileInfo) Size() int64 { return 0 }

func (info stubFileInfo) Mode() fs.FileMode {
	if info.directory {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

func (info stubFileInfo) ModTime() time.Time { return time.Time{} }

func (info stubFileInfo) IsDir() bool { return info.directory }

func (info stubFileInfo) Sys() any { return nil }

// memoryFileSystem serves file contents keyed by absolute path.
type memoryFileSystem struct {
	files       map[string]string
	openErrors  map[string]error
	missingRoot bool
	rootIsFile  bool
}

func (fileSystem *memoryFileSystem) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(memoryWorkspaceRootConstant, path), nil
}

func (fileSystem *memoryFileSystem) Stat(path string) (fs.FileInfo, error) {
	if fileSystem.missingRoot {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return stubFileInfo{name: filepath.Base(path), directory: !fileSystem.rootIsFile}, nil
}

func (fileSystem *memoryFileSystem) Open(path string) (io.ReadCloser, error) {
	if openError, failing := fileSystem.openErrors[path]; failing {
		return nil, openError
	}
	content, exists := fileSystem.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
