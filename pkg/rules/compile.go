package rules

import (
	"strings"

	"github.com/arthur-debert/gccleaner/pkg/errors"
)

// MsgMissingComparison is the validation message for a rule without a usable comparison.
const MsgMissingComparison = "At least one comparison (StartsWith, Contains, EndsWith, Matches) must be set."

// commentIndent is prepended to comments that do not already start with a space.
const commentIndent = "    "

// CompileOptions controls validation.
type CompileOptions struct {
	// Strict also rejects rules with none of the four comparisons set.
	// Without it only an EndsWith-only rule is rejected.
	Strict bool
}

// CompiledRule is a validated, immutable rule ready for matching.
// The zero value is not compiled and refuses to match.
type CompiledRule struct {
	source  Rule
	comment string

	startsWith     string
	contains       string
	endsWith       string
	matches        string
	keepIfContains string

	hasStartsWith     bool
	hasContains       bool
	hasEndsWith       bool
	hasMatches        bool
	hasKeepIfContains bool

	compiled bool
}

// Compile validates r and returns its compiled form. r is not modified, so
// compiling the same rule twice yields the same normalized comment.
func Compile(r Rule, opts CompileOptions) (CompiledRule, error) {
	cr := CompiledRule{
		source:            r,
		comment:           normalizeComment(r.Comment),
		startsWith:        strings.ToLower(r.StartsWith),
		contains:          strings.ToLower(r.Contains),
		endsWith:          strings.ToLower(r.EndsWith),
		matches:           r.Matches,
		keepIfContains:    strings.ToLower(r.KeepIfContains),
		hasStartsWith:     r.StartsWith != "",
		hasContains:       r.Contains != "",
		hasEndsWith:       r.EndsWith != "",
		hasMatches:        r.Matches != "",
		hasKeepIfContains: r.KeepIfContains != "",
	}

	// Only the EndsWith-only combination is rejected by default; a rule with
	// no comparisons at all passes unless strict validation is requested.
	endsWithOnly := cr.hasEndsWith && !cr.hasContains && !cr.hasMatches && !cr.hasStartsWith
	noComparison := !cr.hasEndsWith && !cr.hasContains && !cr.hasMatches && !cr.hasStartsWith
	if endsWithOnly || (opts.Strict && noComparison) {
		return CompiledRule{}, errors.New(errors.ErrRuleInvalid, MsgMissingComparison).
			WithDetail("rule", r.String())
	}

	cr.compiled = true
	return cr, nil
}

// CompileAll compiles rules in order and stops at the first invalid one.
func CompileAll(rs []Rule, opts CompileOptions) ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(rs))
	for i, r := range rs {
		cr, err := Compile(r, opts)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRuleInvalid, "line description %d is invalid", i+1).
				WithDetail("index", i).
				WithDetail("rule", r.String())
		}
		compiled = append(compiled, cr)
	}
	return compiled, nil
}

func normalizeComment(c string) string {
	if c == "" {
		return ""
	}
	if !strings.HasPrefix(c, ";") {
		c = ";" + c
	}
	if !strings.HasPrefix(c, " ") {
		c = commentIndent + c
	}
	return c
}

// Rule returns the raw rule this was compiled from.
func (c CompiledRule) Rule() Rule {
	return c.source
}

// Comment returns the normalized comment appended to commented-out lines.
func (c CompiledRule) Comment() string {
	return c.comment
}

// IsCompiled reports whether c came from a successful Compile.
func (c CompiledRule) IsCompiled() bool {
	return c.compiled
}

// String describes the underlying rule.
func (c CompiledRule) String() string {
	return c.source.String()
}
