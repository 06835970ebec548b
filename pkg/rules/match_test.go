// pkg/rules/match_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test single-rule line matching

package rules_test

import (
	"testing"

	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, r rules.Rule) rules.CompiledRule {
	t.Helper()
	cr, err := rules.Compile(r, rules.CompileOptions{})
	require.NoError(t, err)
	return cr
}

func TestMatchLine(t *testing.T) {
	tests := []struct {
		name     string
		rule     rules.Rule
		line     string
		wantKind rules.Kind
		wantText string
	}{
		{
			name:     "starts_with_hit",
			rule:     rules.Rule{StartsWith: "M73"},
			line:     "M73 P10",
			wantKind: rules.MatchAndReplace,
			wantText: ";M73 P10",
		},
		{
			name:     "starts_with_is_case_insensitive",
			rule:     rules.Rule{StartsWith: "M73"},
			line:     "m73 p10",
			wantKind: rules.MatchAndReplace,
			wantText: ";m73 p10",
		},
		{
			name:     "starts_with_miss",
			rule:     rules.Rule{StartsWith: "M73"},
			line:     "X M73",
			wantKind: rules.NoMatch,
		},
		{
			name:     "contains_hit",
			rule:     rules.Rule{Contains: " r"},
			line:     "M73 P10 R42",
			wantKind: rules.MatchAndReplace,
			wantText: ";M73 P10 R42",
		},
		{
			name:     "contains_miss",
			rule:     rules.Rule{Contains: "R"},
			line:     "M73 P10",
			wantKind: rules.NoMatch,
		},
		{
			name:     "ends_with_hit",
			rule:     rules.Rule{StartsWith: "G1", EndsWith: "E0.5"},
			line:     "G1 X1 e0.5",
			wantKind: rules.MatchAndReplace,
			wantText: ";G1 X1 e0.5",
		},
		{
			name:     "ends_with_miss",
			rule:     rules.Rule{StartsWith: "G1", EndsWith: "E0.5"},
			line:     "G1 E0.5 X1",
			wantKind: rules.NoMatch,
		},
		{
			name:     "matches_is_exact_and_case_insensitive",
			rule:     rules.Rule{Matches: "M107"},
			line:     "m107",
			wantKind: rules.MatchAndReplace,
			wantText: ";m107",
		},
		{
			name:     "matches_rejects_longer_line",
			rule:     rules.Rule{Matches: "M107"},
			line:     "M107 P1",
			wantKind: rules.NoMatch,
		},
		{
			name:     "all_conditions_are_anded",
			rule:     rules.Rule{StartsWith: "M73 P", Contains: " R"},
			line:     "M73 P10",
			wantKind: rules.NoMatch,
		},
		{
			name:     "remove_line",
			rule:     rules.Rule{StartsWith: "M73", RemoveLine: true},
			line:     "M73 P10",
			wantKind: rules.MatchAndDelete,
		},
		{
			name:     "comment_is_normalized_and_appended",
			rule:     rules.Rule{StartsWith: "G1", Comment: "note"},
			line:     "G1 X1",
			wantKind: rules.MatchAndReplace,
			wantText: ";G1 X1    ;note",
		},
		{
			name:     "keep_if_contains_overrides_hit",
			rule:     rules.Rule{StartsWith: "M175", KeepIfContains: "M175 P0"},
			line:     "M175 P0",
			wantKind: rules.NoMatch,
		},
		{
			name:     "keep_if_contains_is_case_insensitive",
			rule:     rules.Rule{StartsWith: "M175", KeepIfContains: "M175 P0"},
			line:     "m175 p0",
			wantKind: rules.NoMatch,
		},
		{
			name:     "keep_if_contains_absent_still_matches",
			rule:     rules.Rule{StartsWith: "M175", KeepIfContains: "M175 P0"},
			line:     "M175 P1",
			wantKind: rules.MatchAndReplace,
			wantText: ";M175 P1",
		},
		{
			name:     "rule_without_comparisons_hits_every_line",
			rule:     rules.Rule{},
			line:     "anything",
			wantKind: rules.MatchAndReplace,
			wantText: ";anything",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := mustCompile(t, tt.rule)

			got, err := cr.MatchLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantKind == rules.MatchAndDelete || tt.wantKind == rules.MatchAndReplace, got.IsHit())
		})
	}
}

func TestMatchLine_UncompiledRule(t *testing.T) {
	var cr rules.CompiledRule

	got, err := cr.MatchLine("M73 P10")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotCompiled))
	assert.Equal(t, rules.NoMatch, got.Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "no-match", rules.NoMatch.String())
	assert.Equal(t, "pass-through", rules.PassThrough.String())
	assert.Equal(t, "delete", rules.MatchAndDelete.String())
	assert.Equal(t, "replace", rules.MatchAndReplace.String())
	assert.Equal(t, "unknown", rules.Kind(42).String())
}
