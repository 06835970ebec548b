package rules

import (
	"strings"

	"github.com/arthur-debert/gccleaner/pkg/errors"
)

// MatchLine decides what this rule does with line.
func (c CompiledRule) MatchLine(line string) (Result, error) {
	return c.MatchFolded(line, strings.ToLower(line))
}

// MatchFolded is MatchLine for callers that already lower-cased the line,
// so a line is folded once no matter how many rules inspect it.
func (c CompiledRule) MatchFolded(line, folded string) (Result, error) {
	if !c.compiled {
		return Result{Kind: NoMatch, RuleIndex: -1}, errors.New(errors.ErrRuleNotCompiled,
			"This LineDescription has a problem: it was used before being validated")
	}

	noMatch := Result{Kind: NoMatch, RuleIndex: -1}

	if c.hasKeepIfContains && strings.Contains(folded, c.keepIfContains) {
		return noMatch, nil
	}
	if c.hasContains && !strings.Contains(folded, c.contains) {
		return noMatch, nil
	}
	if c.hasEndsWith && !strings.HasSuffix(folded, c.endsWith) {
		return noMatch, nil
	}
	if c.hasStartsWith && !strings.HasPrefix(folded, c.startsWith) {
		return noMatch, nil
	}
	if c.hasMatches && !strings.EqualFold(line, c.matches) {
		return noMatch, nil
	}

	if c.source.RemoveLine {
		return Result{Kind: MatchAndDelete, RuleIndex: -1}, nil
	}
	return Result{Kind: MatchAndReplace, Text: ";" + line + c.comment, RuleIndex: -1}, nil
}
