package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is an output format selected with --output.
type Kind string

const (
	Text Kind = "text"
	JSON Kind = "json"
	YAML Kind = "yaml"
)

// ValidKinds lists the accepted --output values.
var ValidKinds = []string{string(Text), string(JSON), string(YAML)}

// ParseKind validates an --output value. Empty means text.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case "", Text:
		return Text, nil
	case JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(ValidKinds, ", "))
}

// Structured reports whether k is a machine-readable format.
func (k Kind) Structured() bool {
	return k == JSON || k == YAML
}

// Write encodes v to w in the structured format k.
func Write(w io.Writer, k Kind, v any) error {
	switch k {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q is not structured", k)
}
