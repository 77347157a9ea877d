package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath selects the codec by file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ParseFormat resolves a format or extension name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Load reads, decodes and validates a config file
// Keys absent from the file keep their value from base
func Load(path string, base Options) (Options, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return base, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	opts, err := Decode(data, f, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Decode overlays data onto base; unknown keys are errors in both formats
func Decode(data []byte, f Format, base Options) (Options, error) {
	opts := base
	// Decoding merges into existing maps; start overrides fresh
	opts.Markers = nil

	switch f {
	case FormatTOML:
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return base, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return base, fmt.Errorf("decode toml: unknown keys %s", strings.Join(keys, ", "))
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && err != io.EOF {
			return base, fmt.Errorf("decode yaml: %w", err)
		}

	default:
		return base, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}

	if opts.Markers == nil {
		opts.Markers = base.Markers
	}
	return opts, nil
}

// Encode writes opts in format f
func Encode(w io.Writer, opts Options, f Format) error {
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(opts); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(opts); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
	return nil
}
