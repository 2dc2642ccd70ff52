package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/util"

	"github.com/temirov/ppcheck/internal/sources/filesystem"
)

const walkRootConstant = "."

// FilesystemSourceDiscoverer locates source files on disk.
type FilesystemSourceDiscoverer struct {
	factory filesystem.Factory
}

// NewFilesystemSourceDiscoverer constructs a source discoverer backed by a go-billy OS filesystem.
func NewFilesystemSourceDiscoverer() *FilesystemSourceDiscoverer {
	return NewFilesystemSourceDiscovererWithFactory(filesystem.OSFactory)
}

// NewFilesystemSourceDiscovererWithFactory constructs a source discoverer using the provided filesystem factory.
func NewFilesystemSourceDiscovererWithFactory(factory filesystem.Factory) *FilesystemSourceDiscoverer {
	if factory == nil {
		factory = filesystem.OSFactory
	}
	return &FilesystemSourceDiscoverer{factory: factory}
}

// DiscoverSources walks rootDirectory and returns the files ending in each
// extension, relative to rootDirectory. Files are grouped by extension in the
// order the extensions are given; within a group they follow the lexical walk
// order. Unreadable subdirectories are skipped.
func (discoverer *FilesystemSourceDiscoverer) DiscoverSources(rootDirectory string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, nil
	}

	rootFilesystem := discoverer.factory(rootDirectory)
	groupedSources := make([][]string, len(extensions))

	walkError := util.Walk(rootFilesystem, walkRootConstant, func(path string, fileInfo os.FileInfo, walkError error) error {
		if walkError != nil {
			if path == walkRootConstant {
				return walkError
			}
			return nil
		}

		if fileInfo.IsDir() {
			return nil
		}

		if fileInfo.Mode()&fs.ModeSymlink != 0 {
			targetInfo, statError := rootFilesystem.Stat(path)
			if statError != nil || targetInfo.IsDir() {
				return nil
			}
		}

		for extensionIndex, extension := range extensions {
			if strings.HasSuffix(fileInfo.Name(), extension) {
				groupedSources[extensionIndex] = append(groupedSources[extensionIndex], filepath.Clean(path))
			}
		}
		return nil
	})
	if walkError != nil {
		return nil, walkError
	}

	var sources []string
	for _, group := range groupedSources {
		sources = append(sources, group...)
	}
	return sources, nil
}
