package keysheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	domaintypes "enigma/internal/domain/types"
)

// FormatVersion is the key sheet layout written by Marshal.
const FormatVersion = 1

// sheet is the YAML document layout.
type sheet struct {
	Version            int `yaml:"version"`
	domaintypes.Config `yaml:",inline"`
}

// Marshal encodes cfg as a YAML key sheet.
func Marshal(cfg domaintypes.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(sheet{Version: FormatVersion, Config: cfg}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes and validates a YAML key sheet. Unknown keys are rejected.
func Unmarshal(data []byte) (domaintypes.Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s sheet
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return domaintypes.Config{}, fmt.Errorf("%w: key sheet is empty", domaintypes.ErrInvalidConfiguration)
		}
		return domaintypes.Config{}, fmt.Errorf("%w: %v", domaintypes.ErrInvalidConfiguration, err)
	}
	if s.Version > FormatVersion {
		return domaintypes.Config{}, fmt.Errorf("unsupported key sheet version %d", s.Version)
	}
	if err := s.Config.Validate(); err != nil {
		return domaintypes.Config{}, err
	}
	return s.Config, nil
}
