package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: an input stream and what
// the responder must write for it.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Input is the full contents of the input stream.
	Input string `yaml:"input"`

	// Expect holds optional expectations on top of the built-in checks.
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation specifies expected output. Nil fields are not checked.
type Expectation struct {
	// Lines is the exact number of output lines.
	Lines *int `yaml:"lines,omitempty"`

	// Output is the exact output stream contents.
	Output *string `yaml:"output,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Expect != nil && s.Expect.Lines != nil && *s.Expect.Lines < 0 {
		return fmt.Errorf("expect.lines must be >= 0, got %d", *s.Expect.Lines)
	}
	return nil
}
