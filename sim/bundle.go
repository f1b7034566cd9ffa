package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyBundle holds simulation tuning, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML"; they do not override the
// built-in defaults. The policy name uses empty string for "not set".
type PolicyBundle struct {
	Policy      string `yaml:"policy"`
	Quantum     *int   `yaml:"quantum"`      // round-robin slice, ticks
	MaxPriority *int   `yaml:"max_priority"` // aging cap and ceiling value
	Resources   *int   `yaml:"resources"`    // resource table size
}

// LoadPolicyBundle reads and parses a YAML policy configuration file.
func LoadPolicyBundle(path string) (*PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	var bundle PolicyBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}

// Validate checks that the policy name and parameter ranges in the
// bundle are valid.
func (b *PolicyBundle) Validate() error {
	if !IsValidPolicy(b.Policy) {
		return fmt.Errorf("unknown policy %q", b.Policy)
	}
	if b.Quantum != nil && *b.Quantum < 1 {
		return fmt.Errorf("quantum must be at least 1, got %d", *b.Quantum)
	}
	if b.MaxPriority != nil && *b.MaxPriority < 1 {
		return fmt.Errorf("max_priority must be at least 1, got %d", *b.MaxPriority)
	}
	if b.Resources != nil && *b.Resources < 1 {
		return fmt.Errorf("resources must be at least 1, got %d", *b.Resources)
	}
	return nil
}
