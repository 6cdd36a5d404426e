// Package categorize labels bank transactions from their description using
// ordered keyword rules. The first matching rule wins.
package categorize

import (
	"strings"

	"github.com/electrotech-dev/electrotech/internal/model"
)

// Rule maps any of its keywords, matched as a substring of the lower-cased
// description, to a category.
type Rule struct {
	Category model.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
}

// Matches reports whether the lower-cased description contains a keyword.
func (r Rule) Matches(lowerDesc string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerDesc, kw) {
			return true
		}
	}
	return false
}

// builtinRules is evaluated top to bottom. "gas" is listed under travel and
// utilities and "electrical" contains "electric", so the order decides.
var builtinRules = []Rule{
	{model.CategoryRevenue, []string{"payment received", "invoice", "customer"}},
	{model.CategoryLabor, []string{"salary", "payroll", "wage"}},
	{model.CategoryMaterials, []string{"supplier", "materials", "hardware", "electrical", "cable", "wire"}},
	{model.CategoryEquipment, []string{"equipment", "tool", "machinery"}},
	{model.CategoryTravel, []string{"fuel", "gas", "petrol", "parking", "toll"}},
	{model.CategoryUtilities, []string{"electric", "water", "gas", "internet", "phone"}},
	{model.CategoryRent, []string{"rent", "lease"}},
}

// BuiltinRules returns a copy of the default rule table in evaluation order.
func BuiltinRules() []Rule {
	return copyRules(builtinRules)
}

func copyRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Categorize labels a description with the built-in rules. It never fails;
// unmatched descriptions are uncategorized.
func Categorize(description string) model.Category {
	return match(builtinRules, strings.ToLower(description))
}

func match(rules []Rule, lowerDesc string) model.Category {
	for _, r := range rules {
		if r.Matches(lowerDesc) {
			return r.Category
		}
	}
	return model.CategoryUncategorized
}

// Categorizer evaluates user rules before the built-in table.
type Categorizer struct {
	rules []Rule
}

// New returns a Categorizer that tries extra, in order, ahead of the
// built-in rules. Keywords are lower-cased.
func New(extra []Rule) *Categorizer {
	rules := make([]Rule, 0, len(extra)+len(builtinRules))
	for _, r := range extra {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		rules = append(rules, Rule{Category: r.Category, Keywords: kws})
	}
	rules = append(rules, builtinRules...)
	return &Categorizer{rules: rules}
}

// Categorize labels a description.
func (c *Categorizer) Categorize(description string) model.Category {
	return match(c.rules, strings.ToLower(description))
}

// Rules returns a copy of the effective rule table in evaluation order.
func (c *Categorizer) Rules() []Rule {
	return copyRules(c.rules)
}
