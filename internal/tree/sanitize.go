package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// errorStartDirectoryFormat reports a start path that does not name a
	// directory, echoing the path exactly as the caller supplied it.
	errorStartDirectoryFormat = `"%s" is %w`
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
)

// ErrInvalidStartDirectory reports a start path that is missing, does not
// exist, or names something other than a directory.
var ErrInvalidStartDirectory = errors.New("not a directory")

// resolveStartDirectory validates that startDirectory names an existing
// directory and returns it in absolute, symlink-resolved form. An empty
// start path resolves to the current working directory.
func resolveStartDirectory(startDirectory string) (string, error) {
	absoluteDirectory, absolutePathError := filepath.Abs(startDirectory)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, startDirectory, absolutePathError)
	}
	directoryInformation, statError := os.Stat(absoluteDirectory)
	if statError != nil || !directoryInformation.IsDir() {
		return "", fmt.Errorf(errorStartDirectoryFormat, startDirectory, ErrInvalidStartDirectory)
	}
	return canonicalizePath(absoluteDirectory), nil
}

// resolveFilterSet canonicalizes each filter entry, joining relative entries
// to the start directory first. Entries naming nothing on disk keep their
// lexical form and therefore never match a visited path.
func resolveFilterSet(filterList []string, startDirectory string) map[string]struct{} {
	filterSet := make(map[string]struct{}, len(filterList))
	for _, filterEntry := range filterList {
		candidatePath := filterEntry
		if !filepath.IsAbs(candidatePath) {
			candidatePath = filepath.Join(startDirectory, candidatePath)
		}
		filterSet[canonicalizePath(candidatePath)] = struct{}{}
	}
	return filterSet
}

// resolveNameFormat accepts candidateFormat only when it is non-empty and
// contains the placeholder token; anything else falls back silently.
func (builder *Builder) resolveNameFormat(candidateFormat string, fallbackFormat string) string {
	if candidateFormat != "" && strings.Contains(candidateFormat, builder.configuration.PlaceholderToken) {
		return candidateFormat
	}
	return fallbackFormat
}

// canonicalizePath returns the absolute form of path with symlinks resolved
// when the full chain exists on disk, falling back to the lexically cleaned
// absolute form otherwise.
func canonicalizePath(path string) string {
	absolutePath, absolutePathError := filepath.Abs(path)
	if absolutePathError != nil {
		return filepath.Clean(path)
	}
	resolvedPath, resolveError := filepath.EvalSymlinks(absolutePath)
	if resolveError != nil {
		return absolutePath
	}
	return resolvedPath
}
