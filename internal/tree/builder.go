// Package tree renders a directory subtree as a formatted text diagram.
//
// A Builder walks the start directory depth first, sorts every directory's
// children under a custom collation rule, drops filtered paths, formats each
// name through a placeholder template, and joins the emitted lines into one
// string ready for stdout or a file.
package tree

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Request carries the caller-supplied parameters of a single build. The zero
// value of every field is usable: an empty StartDirectory renders the current
// working directory, a nil FilterList filters nothing, and empty formats fall
// back to the Config defaults.
type Request struct {
	StartDirectory  string
	FilterList      []string
	DirectoryFormat string
	FileFormat      string
}

// Builder renders directory trees using a fixed Config. A Builder holds no
// per-build state, so a single instance may serve sequential or concurrent
// builds.
type Builder struct {
	configuration Config
}

// NewBuilder returns a Builder that renders with the provided configuration.
func NewBuilder(configuration Config) *Builder {
	return &Builder{configuration: configuration}
}

// buildState carries the sanitized parameters and accumulated lines of one
// build invocation.
type buildState struct {
	startDirectory  string
	filterSet       map[string]struct{}
	directoryFormat string
	fileFormat      string
	rootLead        string
	directoryLead   string
	sortRankTable   map[rune]int
	treeLines       []string
}

// Build renders the subtree rooted at the request's start directory and
// returns it as a single newline-joined string without a trailing newline.
// The returned error wraps ErrInvalidStartDirectory when the start path does
// not name a directory; errors reading any nested directory abort the build.
func (builder *Builder) Build(request Request) (string, error) {
	state, sanitizeError := builder.newBuildState(request)
	if sanitizeError != nil {
		return "", sanitizeError
	}

	builder.appendRootLine(state)
	if contentsError := builder.appendContents(state, state.startDirectory, ""); contentsError != nil {
		return "", contentsError
	}
	return strings.Join(state.treeLines, lineSeparator), nil
}

// newBuildState sanitizes the request into a fresh per-call accumulator.
func (builder *Builder) newBuildState(request Request) (*buildState, error) {
	startDirectory, startDirectoryError := resolveStartDirectory(request.StartDirectory)
	if startDirectoryError != nil {
		return nil, startDirectoryError
	}

	state := &buildState{
		startDirectory:  startDirectory,
		filterSet:       resolveFilterSet(request.FilterList, startDirectory),
		directoryFormat: builder.resolveNameFormat(request.DirectoryFormat, builder.configuration.DirectoryFormat),
		fileFormat:      builder.resolveNameFormat(request.FileFormat, builder.configuration.FileFormat),
		sortRankTable:   buildSortRankTable(builder.configuration.SortOrder),
	}
	state.rootLead, state.directoryLead = builder.calculateLeads(state.directoryFormat)
	return state, nil
}

// calculateLeads derives the two indentation strings from the directory
// format. The root lead measures the placeholder offset after leading
// whitespace is trimmed, since the root line itself starts flush left; the
// directory lead measures the untrimmed offset so the connectors of nested
// entries line up under the placeholder column of their parent's name.
func (builder *Builder) calculateLeads(directoryFormat string) (string, string) {
	trimmedFormat := strings.TrimLeftFunc(directoryFormat, unicode.IsSpace)
	rootLead := strings.Repeat(spaceCharacter, placeholderRuneOffset(trimmedFormat, builder.configuration.PlaceholderToken))
	directoryLead := strings.Repeat(spaceCharacter, placeholderRuneOffset(directoryFormat, builder.configuration.PlaceholderToken))
	return rootLead, directoryLead
}

// placeholderRuneOffset returns the rune offset of token in format, or zero
// when the token is absent. Runes are counted rather than bytes so formats
// containing multi-byte glyphs keep their columns aligned.
func placeholderRuneOffset(format string, token string) int {
	byteOffset := strings.Index(format, token)
	if byteOffset < 0 {
		return 0
	}
	return utf8.RuneCountInString(format[:byteOffset])
}

// appendRootLine emits the first line of the tree: the directory format with
// leading whitespace trimmed and the placeholder replaced by the start
// directory's base name, so the root always starts at column zero.
func (builder *Builder) appendRootLine(state *buildState) {
	trimmedFormat := strings.TrimLeftFunc(state.directoryFormat, unicode.IsSpace)
	rootLine := strings.ReplaceAll(trimmedFormat, builder.configuration.PlaceholderToken, filepath.Base(state.startDirectory))
	state.treeLines = append(state.treeLines, rootLine)
}

// appendContents emits one line per surviving child of currentDirectoryPath
// and recurses into child directories, extending prefix one level per
// descent. Each recursive call receives its own prefix copy, so sibling
// subtrees never observe each other's segments.
func (builder *Builder) appendContents(state *buildState, currentDirectoryPath string, prefix string) error {
	entries, readError := readDirectoryEntries(currentDirectoryPath)
	if readError != nil {
		return readError
	}

	sortDirectoryEntries(entries, state.sortRankTable)
	survivors := state.applyFilters(entries)

	survivorCount := len(survivors)
	for survivorIndex, entry := range survivors {
		lastSurvivor := survivorIndex == survivorCount-1

		connector := builder.configuration.BranchConnector
		if lastSurvivor {
			connector = builder.configuration.LastConnector
		}

		nameFormat := state.fileFormat
		if entry.isDirectory {
			nameFormat = state.directoryFormat
		}
		formattedName := strings.ReplaceAll(nameFormat, builder.configuration.PlaceholderToken, entry.name)

		state.treeLines = append(state.treeLines, state.rootLead+prefix+connector+formattedName)

		if entry.isDirectory {
			padding := builder.configuration.BranchPadding
			if lastSurvivor {
				padding = builder.configuration.LastPadding
			}
			if descendError := builder.appendContents(state, entry.path, prefix+padding+state.directoryLead); descendError != nil {
				return descendError
			}
		}
	}
	return nil
}

// applyFilters drops entries whose canonical path is in the filter set.
// Filtering runs after sorting, so dropped entries never influence the
// connector selection of the survivors.
func (state *buildState) applyFilters(entries []directoryEntry) []directoryEntry {
	if len(state.filterSet) == 0 {
		return entries
	}
	survivors := make([]directoryEntry, 0, len(entries))
	for _, entry := range entries {
		if _, filtered := state.filterSet[canonicalizePath(entry.path)]; filtered {
			continue
		}
		survivors = append(survivors, entry)
	}
	return survivors
}
