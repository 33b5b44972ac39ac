package wmtest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-joist/joist/pkg/errors"
)

// Rule classifies clients as they are managed. Empty match fields are
// ignored; non-empty ones must all equal the client's corresponding
// property for the rule to apply.
type Rule struct {
	Class    string   `yaml:"class,omitempty"`
	Instance string   `yaml:"instance,omitempty"`
	Name     string   `yaml:"name,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Urgent   bool     `yaml:"urgent,omitempty"`
	Floating bool     `yaml:"floating,omitempty"`
}

// Matches reports whether the rule applies to the client.
func (r Rule) Matches(c *Client) bool {
	if r.Class != "" && r.Class != c.Class {
		return false
	}
	if r.Instance != "" && r.Instance != c.Instance {
		return false
	}
	if r.Name != "" && r.Name != c.Name {
		return false
	}
	return true
}

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads client rules from a YAML file. A missing file is not an
// error and yields no rules, so harness setups can keep the file optional.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &errors.ToolkitError{
			Op:        "wmtest.LoadRules",
			Kind:      errors.KindConfig,
			Err:       fmt.Errorf("failed to read %s: %w", path, err),
			Timestamp: time.Now(),
		}
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &errors.ToolkitError{
			Op:        "wmtest.LoadRules",
			Kind:      errors.KindConfig,
			Err:       fmt.Errorf("failed to parse %s: %w", path, err),
			Timestamp: time.Now(),
		}
	}
	return file.Rules, nil
}
