package processor

import (
	"strings"

	"github.com/arthur-debert/gccleaner/pkg/rules"
)

// Engine applies an ordered rule list to lines. It holds no per-line state.
type Engine struct {
	rules []rules.CompiledRule
}

// NewEngine creates an engine over compiled rules, kept in the given order.
func NewEngine(compiled []rules.CompiledRule) *Engine {
	return &Engine{rules: compiled}
}

// Rules returns the engine's rules in evaluation order.
func (e *Engine) Rules() []rules.CompiledRule {
	return e.rules
}

// ProcessLine returns the result of the first rule that hits line, with
// RuleIndex set. If no rule hits, the result is PassThrough carrying line.
func (e *Engine) ProcessLine(line string) (rules.Result, error) {
	folded := strings.ToLower(line)
	for i, r := range e.rules {
		res, err := r.MatchFolded(line, folded)
		if err != nil {
			return rules.Result{Kind: rules.NoMatch, RuleIndex: i}, err
		}
		if res.Kind != rules.NoMatch {
			res.RuleIndex = i
			return res, nil
		}
	}
	return rules.Result{Kind: rules.PassThrough, Text: line, RuleIndex: -1}, nil
}
