// pkg/processor/engine_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: pkg/rules
// PURPOSE: Test first-match rule ordering

package processor_test

import (
	"testing"

	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/processor"
	"github.com/arthur-debert/gccleaner/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, rs ...rules.Rule) *processor.Engine {
	t.Helper()
	compiled, err := rules.CompileAll(rs, rules.CompileOptions{})
	require.NoError(t, err)
	return processor.NewEngine(compiled)
}

func TestEngine_ProcessLine(t *testing.T) {
	engine := newEngine(t,
		rules.Rule{StartsWith: "M175", KeepIfContains: "M175 P0", Comment: "first"},
		rules.Rule{StartsWith: "M175", RemoveLine: true},
		rules.Rule{Contains: "X", Comment: "third"},
	)

	tests := []struct {
		name      string
		line      string
		wantKind  rules.Kind
		wantText  string
		wantIndex int
	}{
		{
			name:      "first_rule_wins",
			line:      "M175 P1",
			wantKind:  rules.MatchAndReplace,
			wantText:  ";M175 P1    ;first",
			wantIndex: 0,
		},
		{
			name:      "keep_override_falls_through_to_next_rule",
			line:      "M175 P0",
			wantKind:  rules.MatchAndDelete,
			wantIndex: 1,
		},
		{
			name:      "later_rule_matches_when_earlier_miss",
			line:      "G1 X10",
			wantKind:  rules.MatchAndReplace,
			wantText:  ";G1 X10    ;third",
			wantIndex: 2,
		},
		{
			name:      "no_rule_passes_through",
			line:      "G28",
			wantKind:  rules.PassThrough,
			wantText:  "G28",
			wantIndex: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ProcessLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantIndex, got.RuleIndex)
		})
	}
}

func TestEngine_LaterRulesAreNotEvaluated(t *testing.T) {
	first, err := rules.Compile(rules.Rule{StartsWith: "G1"}, rules.CompileOptions{})
	require.NoError(t, err)

	// A zero CompiledRule errors when consulted, so a hit on the first rule
	// proves the second one was never reached.
	engine := processor.NewEngine([]rules.CompiledRule{first, {}})

	got, err := engine.ProcessLine("G1 X1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.RuleIndex)

	_, err = engine.ProcessLine("G28")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotCompiled))
}

func TestEngine_EmptyRuleListPassesEverything(t *testing.T) {
	engine := processor.NewEngine(nil)

	got, err := engine.ProcessLine("M73 P10")
	require.NoError(t, err)
	assert.Equal(t, rules.PassThrough, got.Kind)
	assert.Equal(t, "M73 P10", got.Text)
	assert.Empty(t, engine.Rules())
}
