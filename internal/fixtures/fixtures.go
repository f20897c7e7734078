// Package fixtures loads the canonical byte-vector manifest used by the
// ie/message conformance tests.
// Modeled on a YAML-entry-loader pattern
// (gopkg.in/yaml.v3, a typed struct per manifest entry, hex-string
// fields decoded at load time rather than hand-written byte literals
// scattered across every test file).
package fixtures

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Classification tags what a Vector exercises.
type Classification string

const (
	RoundTrip   Classification = "round_trip"
	Negative    Classification = "negative"
	Conformance Classification = "conformance"
)

// Vector is one named byte vector plus its expected classification and a
// short human description, matching the catalog loader's "one YAML node,
// one typed struct" shape.
type Vector struct {
	Name            string         `yaml:"name"`
	Kind            string         `yaml:"kind"` // "message" (full header+body) or "tlv" (one bare TLV)
	Hex             string         `yaml:"hex"`
	Classification  Classification `yaml:"classification"`
	Description     string         `yaml:"description,omitempty"`
	ExpectedErrText string         `yaml:"expected_error,omitempty"` // substring required in the error for Negative vectors
}

// Bytes decodes the vector's hex payload. Whitespace in the YAML value
// (used to group the header/body visually) is stripped before decoding.
func (v Vector) Bytes() ([]byte, error) {
	clean := strings.Join(strings.Fields(v.Hex), "")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("fixtures: vector %q: invalid hex: %w", v.Name, err)
	}
	return b, nil
}

// Manifest is the top-level YAML document: a flat list of vectors.
type Manifest struct {
	Vectors []Vector `yaml:"vectors"`
}

// Load reads and parses a YAML manifest file.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}
	return m, nil
}

// ByClassification filters the manifest's vectors to one classification.
func (m Manifest) ByClassification(c Classification) []Vector {
	var out []Vector
	for _, v := range m.Vectors {
		if v.Classification == c {
			out = append(out, v)
		}
	}
	return out
}

// ByName returns the first vector with the given name, or ok=false.
func (m Manifest) ByName(name string) (Vector, bool) {
	for _, v := range m.Vectors {
		if v.Name == name {
			return v, true
		}
	}
	return Vector{}, false
}
