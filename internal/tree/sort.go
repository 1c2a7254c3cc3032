package tree

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// buildSortRankTable assigns each rune of sortOrder a negative rank by
// position, placing all prioritized runes below every ordinary code point.
func buildSortRankTable(sortOrder string) map[rune]int {
	orderRunes := []rune(sortOrder)
	rankTable := make(map[rune]int, len(orderRunes))
	for orderIndex, orderRune := range orderRunes {
		rankTable[orderRune] = orderIndex - len(orderRunes)
	}
	return rankTable
}

// leadingRuneRank returns the collation rank of the entry name's first rune:
// its rank from the table when prioritized, its own code point otherwise.
func leadingRuneRank(entryName string, rankTable map[rune]int) int {
	if entryName == "" {
		return 0
	}
	leadingRune, _ := utf8.DecodeRuneInString(entryName)
	if tableRank, prioritized := rankTable[leadingRune]; prioritized {
		return tableRank
	}
	return int(leadingRune)
}

// sortDirectoryEntries orders entries with a single stable sort: directories
// and other non-file entries before regular files, then by leading-rune rank,
// then case-insensitively by name.
func sortDirectoryEntries(entries []directoryEntry, rankTable map[rune]int) {
	sort.SliceStable(entries, func(left, right int) bool {
		leftEntry, rightEntry := entries[left], entries[right]
		if leftEntry.isRegularFile != rightEntry.isRegularFile {
			return !leftEntry.isRegularFile
		}
		leftRank := leadingRuneRank(leftEntry.name, rankTable)
		rightRank := leadingRuneRank(rightEntry.name, rankTable)
		if leftRank != rightRank {
			return leftRank < rightRank
		}
		return strings.ToLower(leftEntry.name) < strings.ToLower(rightEntry.name)
	})
}
