package balance

import (
	"io"
	"io/fs"

	"github.com/temirov/ppcheck/internal/sources/discovery"
	"github.com/temirov/ppcheck/internal/sources/filesystem"
)

// SourceDiscoverer finds source files beneath a root directory.
type SourceDiscoverer interface {
	DiscoverSources(rootDirectory string, extensions []string) ([]string, error)
}

// FileSystem provides the filesystem operations required by the balance check.
type FileSystem interface {
	Abs(path string) (string, error)
	Stat(path string) (fs.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
}

// TerminalDetector reports whether writer is attached to a terminal.
type TerminalDetector func(writer io.Writer) bool

// ResolveSourceDiscoverer returns the provided discoverer or a filesystem-backed default.
func ResolveSourceDiscoverer(existing SourceDiscoverer) SourceDiscoverer {
	if existing != nil {
		return existing
	}
	return discovery.NewFilesystemSourceDiscoverer()
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing FileSystem) FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.NewOSFileSystem()
}
