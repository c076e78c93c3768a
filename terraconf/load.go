package terraconf

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML document from r. Decoding is strict: fields not
// present in the schema are rejected, so typos fail loudly instead of
// silently falling back to defaults. Shape errors wrap ErrConfig;
// semantic invariants are checked separately by Validate.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("terraconf: decode: %v: %w", err, ErrConfig)
	}

	return &c, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("terraconf: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
