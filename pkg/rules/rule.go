package rules

import (
	"fmt"
	"strings"
)

// Rule is one configured line description. Empty strings mean "not set".
type Rule struct {
	StartsWith     string `koanf:"StartsWith" json:"StartsWith" toml:"StartsWith" yaml:"StartsWith"`
	Contains       string `koanf:"Contains" json:"Contains" toml:"Contains" yaml:"Contains"`
	EndsWith       string `koanf:"EndsWith" json:"EndsWith" toml:"EndsWith" yaml:"EndsWith"`
	Matches        string `koanf:"Matches" json:"Matches" toml:"Matches" yaml:"Matches"`
	KeepIfContains string `koanf:"KeepIfContains" json:"KeepIfContains" toml:"KeepIfContains" yaml:"KeepIfContains"`
	Comment        string `koanf:"Comment" json:"Comment" toml:"Comment" yaml:"Comment"`
	RemoveLine     bool   `koanf:"RemoveLine" json:"RemoveLine" toml:"RemoveLine" yaml:"RemoveLine"`
}

// String describes the rule's comparisons and action, e.g.
// `StartsWith="M73" KeepIfContains="P0" -> comment`.
func (r Rule) String() string {
	var parts []string
	for _, f := range []struct{ name, value string }{
		{"StartsWith", r.StartsWith},
		{"Contains", r.Contains},
		{"EndsWith", r.EndsWith},
		{"Matches", r.Matches},
		{"KeepIfContains", r.KeepIfContains},
	} {
		if f.value != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", f.name, f.value))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "(no comparisons)")
	}

	action := "comment"
	if r.RemoveLine {
		action = "remove"
	}
	return strings.Join(parts, " ") + " -> " + action
}
