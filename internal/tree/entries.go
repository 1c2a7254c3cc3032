package tree

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// directoryEntry is one classified child of a visited directory. Symbolic
// links are classified by what they point at; an entry whose metadata cannot
// be read (a broken link) counts as neither directory nor regular file.
type directoryEntry struct {
	name          string
	path          string
	isDirectory   bool
	isRegularFile bool
}

// readDirectoryEntries enumerates currentDirectoryPath and classifies every
// child by its followed type.
func readDirectoryEntries(currentDirectoryPath string) ([]directoryEntry, error) {
	rawEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, currentDirectoryPath, readDirectoryError)
	}

	entries := make([]directoryEntry, 0, len(rawEntries))
	for _, rawEntry := range rawEntries {
		entryPath := filepath.Join(currentDirectoryPath, rawEntry.Name())
		entry := directoryEntry{name: rawEntry.Name(), path: entryPath}
		if entryInformation, statError := os.Stat(entryPath); statError == nil {
			entry.isDirectory = entryInformation.IsDir()
			entry.isRegularFile = entryInformation.Mode().IsRegular()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
