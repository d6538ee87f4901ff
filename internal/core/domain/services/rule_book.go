package services

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"orderdesk/internal/pkg/errs"
)

//go:embed intent_rules.yaml
var defaultRuleBook []byte

// IntentRule maps trigger phrases to one catalog item.
type IntentRule struct {
	Item     string   `yaml:"item"`
	Triggers []string `yaml:"triggers"`
}

// Concept groups items under a label such as "spicy" for the semantic fallback.
type Concept struct {
	Label   string   `yaml:"label"`
	Related []string `yaml:"related"`
}

// RuleBook is the matching policy of the intent parser and the semantic fallback.
type RuleBook struct {
	Rules    []IntentRule `yaml:"rules"`
	Concepts []Concept    `yaml:"concepts"`
}

// DefaultRuleBook returns the rule book compiled into the binary.
func DefaultRuleBook() RuleBook {
	rb, err := ParseRuleBook(defaultRuleBook)
	if err != nil {
		panic(err)
	}
	return rb
}

// LoadRuleBook reads a rule book from path, or returns the default one when path is empty.
func LoadRuleBook(path string) (RuleBook, error) {
	if path == "" {
		return DefaultRuleBook(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleBook{}, fmt.Errorf("read intent rules %s: %w", path, err)
	}
	return ParseRuleBook(data)
}

// ParseRuleBook decodes YAML and normalises every phrase to lower case.
func ParseRuleBook(data []byte) (RuleBook, error) {
	var rb RuleBook
	if err := yaml.Unmarshal(data, &rb); err != nil {
		return RuleBook{}, errs.NewValueIsInvalidErrorWithCause("intent rules", err)
	}
	if err := rb.normalize(); err != nil {
		return RuleBook{}, err
	}
	return rb, nil
}

func (rb *RuleBook) normalize() error {
	if len(rb.Rules) == 0 {
		return errs.NewValueIsRequiredError("rules")
	}

	var errList []error
	seen := make(map[string]bool, len(rb.Rules))
	for i := range rb.Rules {
		r := &rb.Rules[i]
		r.Item = normalizePhrase(r.Item)
		if r.Item == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("rules[%d].item", i)))
			continue
		}
		if seen[r.Item] {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("rules", fmt.Errorf("%q has more than one rule", r.Item)))
		}
		seen[r.Item] = true

		triggers := r.Triggers[:0]
		for _, t := range r.Triggers {
			if t = normalizePhrase(t); t != "" {
				triggers = append(triggers, t)
			}
		}
		if len(triggers) == 0 {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("rules[%d].triggers", i)))
		}
		r.Triggers = triggers
	}

	for i := range rb.Concepts {
		c := &rb.Concepts[i]
		c.Label = normalizePhrase(c.Label)
		if c.Label == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("concepts[%d].label", i)))
		}
		for j, item := range c.Related {
			c.Related[j] = normalizePhrase(item)
		}
	}

	return errors.Join(errList...)
}

func normalizePhrase(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
