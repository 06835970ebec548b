package config

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/rules"
)

// Example configuration formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ExampleSettings returns the settings printed whenever configuration is
// missing or invalid.
func ExampleSettings() Settings {
	return Settings{
		FileNamePostFix: "_GC",
		LineEnding:      "\n",
		WaitForKey:      true,
		LineDescriptions: []rules.Rule{
			{
				StartsWith: "M73 P",
				Contains:   " R",
				Comment:    "commented by gccleaner",
			},
			{
				StartsWith:     "M175",
				KeepIfContains: "M175 P0",
				RemoveLine:     true,
			},
		},
	}
}

// ExampleConfig renders ExampleSettings in the given format.
func ExampleConfig(format string) (string, error) {
	ex := ExampleSettings()

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON, "":
		data, err = json.MarshalIndent(ex, "", "  ")
		data = append(data, '\n')
	case FormatTOML:
		data, err = toml.Marshal(ex)
	case FormatYAML:
		data, err = yaml.Marshal(ex)
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (use json, toml or yaml)", format)
	}
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to render %s example", format)
	}
	return string(data), nil
}

// ExampleFileName is the settings file name used when writing an example.
func ExampleFileName(format string) string {
	switch format {
	case FormatTOML:
		return "gccleaner.toml"
	case FormatYAML:
		return "gccleaner.yaml"
	default:
		return "appsettings.json"
	}
}
