package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// FencesConfig holds opaque block fence markers. The engine never
	// interprets them beyond prefix matching.
	FencesConfig struct {
		Open  string `yaml:"open" validate:"required"`
		Close string `yaml:"close" validate:"required"`
	}

	// FootnoteStyle maps a footnote type name to presentation tokens. This is
	// a static style table, the set of valid type names lives in the block
	// package.
	FootnoteStyle struct {
		Glyph string `yaml:"glyph" validate:"required"`
		Color string `yaml:"color" validate:"required"`
	}

	FootnotesConfig struct {
		Mode   FootnotesMode            `yaml:"mode" validate:"gte=0"`
		Styles map[string]FootnoteStyle `yaml:"styles"`
	}

	ExportConfig struct {
		NameTemplate  string `yaml:"name_template"`
		Transliterate bool   `yaml:"transliterate"`
	}

	StatsConfig struct {
		Language string `yaml:"language" validate:"required,bcp47_language_tag"`
	}

	DocumentConfig struct {
		Fences    FencesConfig    `yaml:"fences"`
		Footnotes FootnotesConfig `yaml:"footnotes"`
		Export    ExportConfig    `yaml:"export"`
		Stats     StatsConfig     `yaml:"stats"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// Style returns presentation tokens for a footnote type name, falling back to
// the note style and then to a bare default when the table has no entry.
func (conf *FootnotesConfig) Style(name string) FootnoteStyle {
	if s, ok := conf.Styles[name]; ok {
		return s
	}
	if s, ok := conf.Styles["note"]; ok {
		return s
	}
	return FootnoteStyle{Glyph: "✎", Color: "--color-note"}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
