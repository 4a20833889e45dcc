package config

import (
	_ "embed"

	"github.com/arthur-debert/agentkit/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// defaultsProvider feeds the embedded defaults to koanf as raw TOML
type defaultsProvider struct{ data []byte }

func (p defaultsProvider) ReadBytes() ([]byte, error) { return p.data, nil }

// Read is unused: the defaults always go through the toml parser
func (p defaultsProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "defaults provider requires a parser")
}
