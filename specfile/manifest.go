package specfile

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest is the CLI's --config batch-mode input: run one lexer/grammar
// pair against many source files in one invocation.
type Manifest struct {
	LexSpec string   `yaml:"lexspec"`
	Grammar string   `yaml:"grammar"`
	Sources []string `yaml:"sources"`
}

// ReadManifest parses a --config YAML manifest.
func ReadManifest(r io.Reader) (*Manifest, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
