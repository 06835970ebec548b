package preview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gccleaner/pkg/processor"
	"github.com/arthur-debert/gccleaner/pkg/rules"
)

// MaxRows caps the table; the remaining changes are only counted.
const MaxRows = 500

// BuildMarkdown lists the changes a run would make to source as a markdown
// table of line number, original line, result and the rule that hit.
func BuildMarkdown(source string, changes []processor.Change, compiled []rules.CompiledRule) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", filepath.Base(source))
	if len(changes) == 0 {
		sb.WriteString("No line matches any rule. Applying writes an identical copy.\n")
		return sb.String()
	}

	var deleted, replaced int
	for _, c := range changes {
		switch c.Result.Kind {
		case rules.MatchAndDelete:
			deleted++
		case rules.MatchAndReplace:
			replaced++
		}
	}
	fmt.Fprintf(&sb, "%d lines change: %d commented, %d removed.\n\n", len(changes), replaced, deleted)

	sb.WriteString("## Changes\n\n")
	sb.WriteString("| Line | Original | Result | Rule |\n")
	sb.WriteString("| ---: | --- | --- | --- |\n")
	for i, c := range changes {
		if i == MaxRows {
			fmt.Fprintf(&sb, "\n...and %d more.\n", len(changes)-MaxRows)
			break
		}
		result := "*(removed)*"
		if c.Result.Kind == rules.MatchAndReplace {
			result = cell(c.Result.Text)
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n",
			c.LineNumber, cell(c.Original), result, ruleCell(c.Result.RuleIndex, compiled))
	}
	return sb.String()
}

func ruleCell(index int, compiled []rules.CompiledRule) string {
	if index < 0 || index >= len(compiled) {
		return "?"
	}
	return cell(fmt.Sprintf("#%d %s", index+1, compiled[index].String()))
}

var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

// cell escapes text for use inside a markdown table cell.
func cell(s string) string {
	if s == "" {
		return " "
	}
	return cellEscaper.Replace(s)
}
