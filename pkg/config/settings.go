package config

import (
	"strings"

	"github.com/arthur-debert/gccleaner/pkg/processor"
	"github.com/arthur-debert/gccleaner/pkg/rules"
)

// Canonical setting keys, as written in settings files.
const (
	KeyFileNamePostFix       = "FileNamePostFix"
	KeyLineEnding            = "LineEnding"
	KeyWaitForKey            = "WaitForKey"
	KeyStrictValidation      = "StrictValidation"
	KeyTrailingExtensionOnly = "TrailingExtensionOnly"
	KeyLineDescriptions      = "LineDescriptions"
)

var settingKeys = []string{
	KeyFileNamePostFix,
	KeyLineEnding,
	KeyWaitForKey,
	KeyStrictValidation,
	KeyTrailingExtensionOnly,
	KeyLineDescriptions,
}

var ruleKeys = []string{
	"StartsWith", "Contains", "EndsWith", "Matches", "KeepIfContains", "Comment", "RemoveLine",
}

// Settings is the process-wide configuration, read once at startup.
type Settings struct {
	FileNamePostFix string `koanf:"FileNamePostFix" json:"FileNamePostFix" toml:"FileNamePostFix" yaml:"FileNamePostFix"`
	LineEnding      string `koanf:"LineEnding" json:"LineEnding" toml:"LineEnding" yaml:"LineEnding"`
	WaitForKey      bool   `koanf:"WaitForKey" json:"WaitForKey" toml:"WaitForKey" yaml:"WaitForKey"`

	// StrictValidation rejects rules without any comparison.
	StrictValidation bool `koanf:"StrictValidation" json:"StrictValidation,omitempty" toml:"StrictValidation,omitempty" yaml:"StrictValidation,omitempty"`
	// TrailingExtensionOnly inserts the postfix before the trailing
	// extension instead of the first occurrence of the extension text.
	TrailingExtensionOnly bool `koanf:"TrailingExtensionOnly" json:"TrailingExtensionOnly,omitempty" toml:"TrailingExtensionOnly,omitempty" yaml:"TrailingExtensionOnly,omitempty"`

	// LineDescriptions are evaluated in order; the first hit wins.
	LineDescriptions []rules.Rule `koanf:"LineDescriptions" json:"LineDescriptions" toml:"LineDescriptions" yaml:"LineDescriptions"`

	// Source is the settings file the values were read from.
	Source string `koanf:"-" json:"-" toml:"-" yaml:"-"`
}

// CompileRules validates every line description and returns them compiled.
func (s *Settings) CompileRules() ([]rules.CompiledRule, error) {
	return rules.CompileAll(s.LineDescriptions, rules.CompileOptions{Strict: s.StrictValidation})
}

// RunSettings returns the file-level settings for processor.Run.
func (s *Settings) RunSettings() processor.RunSettings {
	return processor.RunSettings{
		FileNamePostFix:       s.FileNamePostFix,
		TrailingExtensionOnly: s.TrailingExtensionOnly,
	}
}

// ProcessOptions returns processing options carrying the line ending.
func (s *Settings) ProcessOptions() processor.Options {
	return processor.Options{LineEnding: s.LineEnding}
}

func postProcess(s *Settings) {
	if strings.TrimSpace(s.FileNamePostFix) == "" {
		s.FileNamePostFix = processor.DefaultFileNamePostFix
	}
	if s.LineEnding == "" {
		s.LineEnding = processor.DefaultLineEnding
	}
}

// lookupKey finds the canonical spelling of key in known, ignoring case.
func lookupKey(key string, known []string) (string, bool) {
	for _, k := range known {
		if strings.EqualFold(k, key) {
			return k, true
		}
	}
	return key, false
}

// canonicalKey maps a key in any letter case to its canonical spelling.
// Unknown keys are returned unchanged.
func canonicalKey(key string, known []string) string {
	k, _ := lookupKey(key, known)
	return k
}

// canonicalize rewrites user keys to their canonical spelling so that
// "fileNamePostFix" and "FileNamePostFix" address the same setting.
func canonicalize(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		key = canonicalKey(key, settingKeys)
		if key == KeyLineDescriptions {
			value = canonicalizeRules(value)
		}
		out[key] = value
	}
	return out
}

func canonicalizeRules(value interface{}) interface{} {
	var list []interface{}
	switch v := value.(type) {
	case []interface{}:
		list = v
	case []map[string]interface{}:
		for _, m := range v {
			list = append(list, m)
		}
	default:
		return value
	}
	out := make([]interface{}, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			out = append(out, item)
			continue
		}
		rule := make(map[string]interface{}, len(m))
		for k, v := range m {
			rule[canonicalKey(k, ruleKeys)] = v
		}
		out = append(out, rule)
	}
	return out
}
