package categorize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/electrotech-dev/electrotech/internal/model"
)

// RuleFile is the on-disk shape of categorization-rules.yaml.
type RuleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads user rules from path. A missing file yields no rules.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	for i, r := range rf.Rules {
		if !r.Category.Valid() {
			return nil, fmt.Errorf("rule %d: unknown category %q", i+1, r.Category)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d: no keywords", i+1)
		}
	}
	return rf.Rules, nil
}

// SaveRules writes rules to path.
func SaveRules(path string, rules []Rule) error {
	if rules == nil {
		rules = []Rule{}
	}
	data, err := yaml.Marshal(RuleFile{Rules: rules})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}

// Load builds a Categorizer from a rules file.
func Load(path string) (*Categorizer, error) {
	rules, err := LoadRules(path)
	if err != nil {
		return nil, err
	}
	return New(rules), nil
}

// Kind reports whether a category books income or cost.
func Kind(c model.Category) string {
	switch c {
	case model.CategoryRevenue:
		return "income"
	case model.CategoryUncategorized:
		return "unknown"
	default:
		return "expense"
	}
}
