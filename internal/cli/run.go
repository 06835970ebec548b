package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gccleaner/pkg/config"
	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/keypress"
	"github.com/arthur-debert/gccleaner/pkg/logging"
	"github.com/arthur-debert/gccleaner/pkg/output"
	"github.com/arthur-debert/gccleaner/pkg/preview"
	"github.com/arthur-debert/gccleaner/pkg/processor"
)

type runOptions struct {
	verbosity   int
	configFile  string
	dryRun      bool
	preview     bool
	noWait      bool
	quiet       bool
	postfix     string
	strict      bool
	trailingExt bool
}

// reportedError is an error whose message was already printed.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// overrides maps the explicitly set flags onto settings keys.
func (o *runOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	ov := map[string]interface{}{}
	if cmd.Flags().Changed("postfix") {
		ov[config.KeyFileNamePostFix] = o.postfix
	}
	if cmd.Flags().Changed("strict") {
		ov[config.KeyStrictValidation] = o.strict
	}
	if cmd.Flags().Changed("trailing-ext") {
		ov[config.KeyTrailingExtensionOnly] = o.trailingExt
	}
	return ov
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.DetectFormat(f) == output.FormatTerminal
}

func interactiveInput(r io.Reader) (*os.File, bool) {
	f, ok := r.(*os.File)
	return f, ok && keypress.IsInteractive(f)
}

func (o *runOptions) run(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cli")
	out := cmd.OutOrStdout()

	r, err := output.NewRenderer(out, !isTerminal(out))
	if err != nil {
		return err
	}
	r.SetVerbose(o.verbosity > 0)

	var settings *config.Settings
	defer func() {
		// Settings that never loaded cannot opt out of waiting.
		if o.noWait || (settings != nil && !settings.WaitForKey) {
			return
		}
		if _, ok := interactiveInput(cmd.InOrStdin()); !ok {
			return
		}
		if err := keypress.Wait(cmd.InOrStdin(), out); err != nil {
			logger.Warn().Err(err).Msg("Waiting for a key failed")
		}
	}()

	if len(args) == 0 {
		return o.abort(r, nil, errors.New(errors.ErrMissingArgument, MsgMissingArgument), "")
	}
	source := args[0]
	if info, statErr := os.Stat(source); statErr != nil || info.IsDir() {
		return o.abort(r, nil, errors.Newf(errors.ErrFileNotFound, MsgFileNotFound, source), source)
	}

	loaded, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides:  o.overrides(cmd),
	})
	settings = loaded
	if err != nil {
		return o.abort(r, settings, err, source)
	}

	compiled, err := settings.CompileRules()
	if err != nil {
		return o.abort(r, settings, err, source)
	}
	engine := processor.NewEngine(compiled)
	runSettings := settings.RunSettings()
	opts := settings.ProcessOptions()
	opts.DryRun = o.dryRun

	if o.preview {
		in, ok := interactiveInput(cmd.InOrStdin())
		if !ok {
			return errors.New(errors.ErrInvalidInput, MsgPreviewNeedsTTY)
		}

		var changes []processor.Change
		dry := opts
		dry.DryRun = true
		dry.OnChange = func(c processor.Change) { changes = append(changes, c) }
		if _, err := processor.Run(source, engine, runSettings, dry); err != nil {
			return o.fail(r, settings, err, source)
		}

		decision, err := preview.Run(preview.BuildMarkdown(source, changes, compiled),
			tea.WithInput(in), tea.WithOutput(out))
		if err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		logger.Info().Stringer("decision", decision).Int("changes", len(changes)).Msg("Preview closed")
		switch decision {
		case preview.Apply:
		case preview.Skip:
			return r.RenderMessage("Warning", MsgPreviewSkipped)
		default:
			return nil
		}
	}

	if !o.quiet {
		if err := r.RenderMessage("Info", MsgProcessingFile); err != nil {
			return err
		}
		opts.OnChange = r.Progress()
	}

	stats, err := processor.Run(source, engine, runSettings, opts)
	if err != nil {
		return o.fail(r, settings, err, source)
	}
	return r.RenderSummary(stats, o.dryRun)
}

// fail reports a processing error. Pre-processing failures become a
// diagnostic; anything else is printed and returned.
func (o *runOptions) fail(r *output.Renderer, settings *config.Settings, err error, source string) error {
	if errors.IsAbort(err) {
		return o.abort(r, settings, err, source)
	}
	if renderErr := r.RenderError(err); renderErr != nil {
		return err
	}
	return &reportedError{err: err}
}

// abort prints the diagnostic for err followed by an example configuration.
// The run ends successfully: nothing was written.
func (o *runOptions) abort(r *output.Renderer, settings *config.Settings, err error, source string) error {
	logger := logging.GetLogger("cli")
	logger.Warn().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Run aborted")

	settingsFile := o.configFile
	if settings != nil && settings.Source != "" {
		settingsFile = settings.Source
	}

	d := output.Diagnostic{ExampleFormat: exampleFormat(settingsFile)}
	switch errors.GetErrorCode(err) {
	case errors.ErrMissingArgument:
		d.Headline = MsgMissingArgument
	case errors.ErrFileNotFound:
		d.Headline = fmt.Sprintf(MsgFileNotFound, source)
	case errors.ErrRuleInvalid, errors.ErrRuleNotCompiled:
		d.Headline = fmt.Sprintf(MsgRuleProblem, settingsFile)
		d.Details = errors.Messages(err)
		if rule, ok := errors.GetErrorDetails(err)["rule"].(string); ok {
			d.Details = append(d.Details, rule)
		}
	default:
		d.Headline = MsgConfigProblem
		d.Details = errors.Messages(err)
	}

	example, exErr := config.ExampleConfig(d.ExampleFormat)
	if exErr != nil {
		return exErr
	}
	d.Example = example
	return r.RenderDiagnostic(d)
}

// exampleFormat picks the example syntax matching the settings file in use.
func exampleFormat(settingsFile string) string {
	switch strings.ToLower(filepath.Ext(settingsFile)) {
	case ".toml":
		return config.FormatTOML
	case ".yaml", ".yml":
		return config.FormatYAML
	default:
		return config.FormatJSON
	}
}
