package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/gccleaner/pkg/logging"
	"github.com/arthur-debert/gccleaner/pkg/output/styles"
	"github.com/arthur-debert/gccleaner/pkg/processor"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer writes styled messages to a writer. In no-color mode every style
// is dropped and example blocks are printed verbatim.
type Renderer struct {
	templates *template.Template
	writer    io.Writer
	noColor   bool
	verbose   bool
	dots      int
}

// Diagnostic is the message printed when a run is aborted before any file
// is written.
type Diagnostic struct {
	Headline string
	Details  []string
	// Example is an example configuration; ExampleFormat names its syntax
	// for highlighting (json, toml or yaml).
	Example       string
	ExampleFormat string
}

type summaryData struct {
	FileName    string
	Destination string
	Lines       int
	Matches     int
	Deleted     int
	Replaced    int
	Duration    string
	DryRun      bool
	Verbose     bool
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")

	r := &Renderer{writer: w, noColor: noColor}
	tmpl, err := template.New("output").
		Funcs(template.FuncMap{"style": r.style}).
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = tmpl

	log.Debug().Bool("noColor", noColor).Msg("Renderer created")
	return r, nil
}

// SetVerbose adds the per-action counts and destination to the summary.
func (r *Renderer) SetVerbose(verbose bool) {
	r.verbose = verbose
}

func (r *Renderer) style(name, text string) string {
	if r.noColor {
		return text
	}
	return styles.GetStyle(name).Render(text)
}

func (r *Renderer) execute(name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	_, err := fmt.Fprintln(r.writer, strings.TrimSuffix(buf.String(), "\n"))
	return err
}

// Progress returns an OnChange callback printing one dot per matched line.
func (r *Renderer) Progress() func(processor.Change) {
	dot := r.style("Progress", ".")
	return func(processor.Change) {
		r.dots++
		fmt.Fprint(r.writer, dot)
	}
}

// endProgress terminates a line of dots with a blank line.
func (r *Renderer) endProgress() {
	if r.dots > 0 {
		fmt.Fprint(r.writer, "\n\n")
		r.dots = 0
	}
}

// RenderSummary prints the statistics of a completed run.
func (r *Renderer) RenderSummary(stats processor.Stats, dryRun bool) error {
	r.endProgress()
	return r.execute("summary.tmpl", summaryData{
		FileName:    filepath.Base(stats.Source),
		Destination: stats.Destination,
		Lines:       stats.Lines,
		Matches:     stats.Matches,
		Deleted:     stats.Deleted,
		Replaced:    stats.Replaced,
		Duration:    stats.Duration.String(),
		DryRun:      dryRun,
		Verbose:     r.verbose,
	})
}

// RenderDiagnostic prints why a run was aborted, followed by the example
// configuration.
func (r *Renderer) RenderDiagnostic(d Diagnostic) error {
	r.endProgress()
	if d.Example != "" && !r.noColor {
		d.Example = RenderMarkdown(CodeBlock(d.Example, d.ExampleFormat), 0)
	}
	return r.execute("diagnostic.tmpl", d)
}

// RenderError prints err with the error style.
func (r *Renderer) RenderError(err error) error {
	r.endProgress()
	_, writeErr := fmt.Fprintln(r.writer, r.style("Error", "An error occurred:")+"\n"+err.Error())
	return writeErr
}

// RenderMessage prints message with the named style.
func (r *Renderer) RenderMessage(style, message string) error {
	_, err := fmt.Fprintln(r.writer, r.style(style, message))
	return err
}

// CodeBlock wraps content in a fenced markdown code block.
func CodeBlock(content, lang string) string {
	if len(content) > 0 && content[len(content)-1] != '\n' {
		content += "\n"
	}
	return "```" + lang + "\n" + content + "```\n"
}

// RenderMarkdown renders markdown for the terminal with glamour, wrapping at
// width when width is positive. The input is returned unchanged when
// rendering fails.
func RenderMarkdown(md string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
