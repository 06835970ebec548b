package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Comment out or remove G-code lines matched by configured rules"
	MsgVersionShort       = "Print version information"
	MsgVersionLong        = "Print detailed version information including commit hash and build date"
	MsgExampleConfigShort = "Print or write an example settings file"
	MsgCompletionShort    = "Generate shell completion script"

	// Diagnostics
	MsgMissingArgument = "You must provide a path to a file as parameter."
	MsgFileNotFound    = "File:\n%s\nnot found."
	MsgConfigProblem   = "There is a problem with the settings."
	MsgRuleProblem     = "There is a problem with at least one LineDescription in %s"
	MsgPreviewNeedsTTY = "--preview needs an interactive terminal"
	MsgProcessingFile  = "Processing File"
	MsgPreviewSkipped  = "Skipped, nothing was written."
	MsgExampleWritten  = "Written %s\n"
	MsgExampleSkipped  = "%s already exists, not overwritten\n"

	// Version output
	MsgVersionFormat = "gccleaner version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Settings file to use instead of searching for one"
	MsgFlagDryRun      = "Process the file and report counts without writing the result"
	MsgFlagPreview     = "Show the changes and ask before writing the result"
	MsgFlagNoWait      = "Never wait for a key before exiting"
	MsgFlagQuiet       = "Do not print progress"
	MsgFlagPostfix     = "Override FileNamePostFix"
	MsgFlagStrict      = "Reject line descriptions without any comparison"
	MsgFlagTrailingExt = "Insert the postfix before the trailing extension only"
	MsgFlagFormat      = "Example format: json, toml or yaml"
	MsgFlagWrite       = "Write the example to the current directory"

	// Error messages
	MsgErrGenConfig = "failed to generate example config: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/example-config-long.txt
	msgExampleConfigLongRaw string
	MsgExampleConfigLong    = strings.TrimSpace(msgExampleConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
