package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gccleaner/internal/version"
	"github.com/arthur-debert/gccleaner/pkg/commands/genconfig"
	"github.com/arthur-debert/gccleaner/pkg/config"
	"github.com/arthur-debert/gccleaner/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:     "gccleaner [flags] <file>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		// A missing file argument is reported as a diagnostic, not a usage error.
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	flags.BoolVarP(&opts.preview, "preview", "p", false, MsgFlagPreview)
	flags.BoolVar(&opts.noWait, "no-wait", false, MsgFlagNoWait)
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.StringVar(&opts.postfix, "postfix", "", MsgFlagPostfix)
	flags.BoolVar(&opts.strict, "strict", false, MsgFlagStrict)
	flags.BoolVar(&opts.trailingExt, "trailing-ext", false, MsgFlagTrailingExt)
	rootCmd.MarkFlagsMutuallyExclusive("dry-run", "preview")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExampleConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newExampleConfigCmd() *cobra.Command {
	var (
		format string
		write  bool
	)

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: MsgExampleConfigShort,
		Long:  MsgExampleConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Format: format,
				Write:  write,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			out := cmd.OutOrStdout()
			if !write {
				fmt.Fprint(out, result.ConfigContent)
				return nil
			}
			for _, path := range result.FilesWritten {
				fmt.Fprintf(out, MsgExampleWritten, path)
			}
			for _, path := range result.FilesSkipped {
				fmt.Fprintf(out, MsgExampleSkipped, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatJSON, MsgFlagFormat)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatJSON, config.FormatTOML, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell.
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unknown shell: %s (supported: bash, zsh, fish, powershell)", shell)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		log.Debug().Err(err).Msg("Command failed")
		var shown *reportedError
		if !stderrors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
