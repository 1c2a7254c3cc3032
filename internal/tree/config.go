package tree

import "os"

const (
	spaceCharacter = " "
	// lineSeparator joins emitted lines into the final rendering.
	lineSeparator = "\n"
)

// Connector and padding glyph pairs. Connectors and padding segments must
// stay equal length so nested lines keep their columns aligned.
const (
	defaultBranchConnector = "├─"
	defaultLastConnector   = "└─"
	defaultBranchPadding   = "│ "
	defaultLastPadding     = "  "
)

const (
	// defaultPlaceholderToken is the substring replaced with an entry name.
	defaultPlaceholderToken = "$NAME"
	// defaultSortOrder ranks names starting with these characters above all
	// other leading characters, in the order given.
	defaultSortOrder = "_."
)

// Built-in name formats applied when a request supplies none.
const (
	defaultDirectoryFormat = spaceCharacter + defaultPlaceholderToken + string(os.PathSeparator)
	defaultFileFormat      = spaceCharacter + defaultPlaceholderToken
)

// Config carries the glyphs, placeholder token, fallback name formats, and
// leading-character sort order used by a Builder.
type Config struct {
	BranchConnector  string
	LastConnector    string
	BranchPadding    string
	LastPadding      string
	PlaceholderToken string
	DirectoryFormat  string
	FileFormat       string
	SortOrder        string
}

// DefaultConfig returns the stock console glyph set, the default placeholder
// token, and the built-in directory and file name formats.
func DefaultConfig() Config {
	return Config{
		BranchConnector:  defaultBranchConnector,
		LastConnector:    defaultLastConnector,
		BranchPadding:    defaultBranchPadding,
		LastPadding:      defaultLastPadding,
		PlaceholderToken: defaultPlaceholderToken,
		DirectoryFormat:  defaultDirectoryFormat,
		FileFormat:       defaultFileFormat,
		SortOrder:        defaultSortOrder,
	}
}
