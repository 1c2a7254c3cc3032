// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/twig/internal/config"
	"github.com/temirov/twig/internal/services/clipboard"
	"github.com/temirov/twig/internal/tree"
	"github.com/temirov/twig/internal/utils"
)

const (
	directoryFormatFlagName      = "dir-format"
	directoryFormatFlagShorthand = "d"
	fileFormatFlagName           = "file-format"
	fileFormatFlagShorthand      = "f"
	filterFlagName               = "filter"
	filterFlagShorthand          = "l"
	copyFlagName                 = "copy"
	configFlagName               = "config"
	versionFlagName              = "version"
	globalFlagName               = "global"
	forceFlagName                = "force"
	versionTemplate              = "twig version: {{.Version}}\n"
	rootUse                      = "twig <directory>"
	rootShortDescription         = "render a directory tree"
	rootLongDescription          = `twig creates a tree of the specified directory, with names being formatted
according to the specified formats, and paths being ignored by the filter list.
Format strings substitute each entry name for the $NAME placeholder; leading
spaces in the directory format are left-trimmed on the first line so the root
name starts at the first column. Use --copy to place the rendered tree on the
system clipboard and --version to print the application version.`

	// rootUsageExample demonstrates placeholder substitution and filtering.
	rootUsageExample = `  # Render the current directory
  twig .

  # Mark directory names with brackets: an entry named Foo renders as " [] Foo"
  twig -d " [] $NAME" .

  # Skip a file and a whole subtree, both relative to the start directory
  twig -l "Foo/bar.txt,Foo" .`

	initUse              = "init"
	initShortDescription = "write a starter configuration file"
	initLongDescription  = `Write a starter configuration file holding the default tree settings.
Without flags the file is created in the current directory; --global writes it
to the user configuration directory instead.`
	// initUsageExample demonstrates init command usage.
	initUsageExample = `  # Create ` + utils.ConfigFileName + ` in the current directory
  twig init

  # Create or replace the user-wide configuration
  twig init --global --force`

	directoryFormatFlagDescription = "the format string to use for directory names"
	fileFormatFlagDescription      = "the format string to use for file names"
	filterFlagDescription          = "a comma-separated list of directory/file paths to filter"
	copyFlagDescription            = "copy the rendered tree to the system clipboard"
	configFlagDescription          = "path to the configuration file to read"
	versionFlagDescription         = "display application version"
	globalFlagDescription          = "write the configuration to the user configuration directory"
	forceFlagDescription           = "overwrite an existing configuration file"

	configurationWrittenFormat  = "Configuration written to %s\n"
	warningClipboardCopyFormat  = "Warning: copying to clipboard failed: %v\n"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// Execute runs the twig application.
func Execute() error {
	rootCommand := createRootCommand()
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var directoryFormat string
	var fileFormat string
	var filterPatterns []string
	var copyEnabled bool
	var configurationPath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.ExactArgs(1),
		Version:      utils.GetApplicationVersion(),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: configurationPath,
			})
			if configurationError != nil {
				return configurationError
			}

			treeConfiguration := applicationConfiguration.Tree
			resolvedDirectoryFormat := treeConfiguration.DirectoryFormat
			if command.Flags().Changed(directoryFormatFlagName) {
				resolvedDirectoryFormat = directoryFormat
			}
			resolvedFileFormat := treeConfiguration.FileFormat
			if command.Flags().Changed(fileFormatFlagName) {
				resolvedFileFormat = fileFormat
			}
			resolvedFilterList := treeConfiguration.Filter
			if command.Flags().Changed(filterFlagName) {
				resolvedFilterList = filterPatterns
			}
			clipboardEnabled := false
			if treeConfiguration.Clipboard != nil {
				clipboardEnabled = *treeConfiguration.Clipboard
			}
			if command.Flags().Changed(copyFlagName) {
				clipboardEnabled = copyEnabled
			}

			return runTreeCommand(treeCommandOptions{
				Directory:        arguments[0],
				DirectoryFormat:  resolvedDirectoryFormat,
				FileFormat:       resolvedFileFormat,
				FilterList:       utils.DeduplicatePatterns(resolvedFilterList),
				ClipboardEnabled: clipboardEnabled,
			})
		},
	}

	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.Flags().StringVarP(&directoryFormat, directoryFormatFlagName, directoryFormatFlagShorthand, "", directoryFormatFlagDescription)
	rootCommand.Flags().StringVarP(&fileFormat, fileFormatFlagName, fileFormatFlagShorthand, "", fileFormatFlagDescription)
	rootCommand.Flags().StringSliceVarP(&filterPatterns, filterFlagName, filterFlagShorthand, nil, filterFlagDescription)
	registerBooleanFlag(rootCommand.Flags(), &copyEnabled, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.PersistentFlags().Bool(versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:     initUse,
		Short:   initShortDescription,
		Long:    initLongDescription,
		Example: initUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initializationError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializationError != nil {
				return initializationError
			}
			fmt.Printf(configurationWrittenFormat, writtenPath)
			return nil
		},
	}

	initCommand.Flags().BoolVar(&globalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// treeCommandOptions carries the resolved inputs of a single tree rendering run.
type treeCommandOptions struct {
	Directory        string
	DirectoryFormat  string
	FileFormat       string
	FilterList       []string
	ClipboardEnabled bool
	Clipboard        clipboard.Copier
	Writer           io.Writer
	ErrorWriter      io.Writer
}

// runTreeCommand renders the requested tree and delivers it to stdout and,
// when enabled, the system clipboard. A clipboard failure is reported as a
// warning because the tree has already been printed.
func runTreeCommand(options treeCommandOptions) error {
	outputWriter := options.Writer
	if outputWriter == nil {
		outputWriter = os.Stdout
	}
	errorWriter := options.ErrorWriter
	if errorWriter == nil {
		errorWriter = os.Stderr
	}

	treeBuilder := tree.NewBuilder(tree.DefaultConfig())
	renderedTree, buildError := treeBuilder.Build(tree.Request{
		StartDirectory:  options.Directory,
		FilterList:      options.FilterList,
		DirectoryFormat: options.DirectoryFormat,
		FileFormat:      options.FileFormat,
	})
	if buildError != nil {
		return buildError
	}

	if _, writeError := fmt.Fprintln(outputWriter, renderedTree); writeError != nil {
		return writeError
	}

	if options.ClipboardEnabled {
		clipboardCopier := options.Clipboard
		if clipboardCopier == nil {
			clipboardCopier = clipboard.NewService()
		}
		if copyError := clipboardCopier.Copy(renderedTree); copyError != nil {
			fmt.Fprintf(errorWriter, warningClipboardCopyFormat, copyError)
		}
	}
	return nil
}
