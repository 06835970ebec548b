package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/logging"
)

// EnvPrefix prefixes environment overrides, e.g. GCCLEANER_FILENAMEPOSTFIX.
const EnvPrefix = "GCCLEANER_"

// SettingsFileNames are searched in order within each search directory.
var SettingsFileNames = []string{
	"appsettings.json",
	"gccleaner.json",
	"gccleaner.toml",
	"gccleaner.yaml",
	"gccleaner.yml",
}

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where settings come from.
type LoadOptions struct {
	// ConfigFile is an explicit settings file. When empty the search
	// directories are scanned for SettingsFileNames.
	ConfigFile string
	// SearchDirs overrides DefaultSearchDirs.
	SearchDirs []string
	// Overrides are applied last, keyed by canonical setting name.
	Overrides map[string]interface{}
}

// DefaultSearchDirs returns the executable's directory, the working
// directory and the gccleaner directory under the XDG config home.
func DefaultSearchDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	dirs = append(dirs, ".")
	dirs = append(dirs, filepath.Join(xdg.ConfigHome, logging.AppDirName))
	return dirs
}

// FindSettingsFile returns the first settings file found in dirs, or "".
func FindSettingsFile(dirs []string) string {
	for _, dir := range dirs {
		for _, name := range SettingsFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse,
			"unsupported settings file %s (use .json, .toml or .yaml)", path)
	}
}

// Load reads the settings. It fails with ErrConfigMissing when no settings
// file exists or it holds no line descriptions, and with ErrConfigParse when
// the file cannot be read.
func Load(opts LoadOptions) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Settings file
	path := opts.ConfigFile
	if path == "" {
		dirs := opts.SearchDirs
		if len(dirs) == 0 {
			dirs = DefaultSearchDirs()
		}
		path = FindSettingsFile(dirs)
		if path == "" {
			return nil, errors.Newf(errors.ErrConfigMissing,
				"no settings file found (looked for %s in %s)",
				strings.Join(SettingsFileNames, ", "), strings.Join(dirs, ", "))
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigMissing, "settings file %s not found", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	userK := koanf.New(".")
	if err := userK.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "There is a problem with %s", path)
	}
	if err := k.Load(confmap.Provider(canonicalize(userK.Raw()), "."), nil); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to merge %s", path)
	}
	logger.Debug().Str("path", path).Msg("Loaded settings file")

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.TrimPrefix(s, EnvPrefix)
		canonical, ok := lookupKey(key, settingKeys)
		if !ok || canonical == KeyLineDescriptions {
			// Unknown keys and the rule list cannot come from the environment.
			return ""
		}
		return canonical
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load environment")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(canonicalize(opts.Overrides), "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "There is a problem with the content of %s", path)
	}

	// 6. Post-process
	postProcess(&s)
	s.Source = path

	if len(s.LineDescriptions) < 1 {
		return &s, errors.Newf(errors.ErrConfigMissing,
			"There is a problem with the content of %s: LineDescriptions must contain at least one entry", path)
	}

	logger.Info().
		Str("source", path).
		Int("ruleCount", len(s.LineDescriptions)).
		Str("postfix", s.FileNamePostFix).
		Bool("waitForKey", s.WaitForKey).
		Msg("Settings loaded")
	return &s, nil
}
