// Package eligibility decides whether a merchant or expense description is a
// qualified medical expense. Classifiers are pure: no I/O, no shared state
// mutation, same answer for the same description.
package eligibility

import "strings"

// Classifier is the pluggable eligibility policy consumed by the authorizer.
type Classifier interface {
	IsEligible(description string) bool
}

// Rule maps a category to the keywords that identify it.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultRules is the built-in allow-list.
var DefaultRules = []Rule{
	{Category: "pharmacy", Keywords: []string{"pharmacy", "drug", "cvs", "walgreens", "rite aid"}},
	{Category: "doctor", Keywords: []string{"doctor", "physician", "clinic", "medical", "urgent care"}},
	{Category: "dental", Keywords: []string{"dental", "dentist", "orthodont"}},
	{Category: "vision", Keywords: []string{"vision", "optical", "optometr", "ophthalm", "eyecare", "eye care"}},
	{Category: "hospital", Keywords: []string{"hospital"}},
}

// KeywordClassifier matches descriptions case-insensitively against keyword rules.
type KeywordClassifier struct {
	rules []Rule
}

// NewKeywordClassifier builds a classifier from rules. Keywords are lowercased
// and trimmed once here; empty keywords are dropped. With no rules the
// defaults apply.
func NewKeywordClassifier(rules []Rule) *KeywordClassifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		if len(kws) > 0 {
			normalized = append(normalized, Rule{Category: r.Category, Keywords: kws})
		}
	}
	return &KeywordClassifier{rules: normalized}
}

// RulesFromKeywords turns a flat keyword list (as read from configuration)
// into one rule per keyword, the keyword doubling as category name.
func RulesFromKeywords(keywords []string) []Rule {
	rules := make([]Rule, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		rules = append(rules, Rule{Category: strings.ToLower(kw), Keywords: []string{kw}})
	}
	return rules
}

// IsEligible reports whether the description matches any rule.
func (c *KeywordClassifier) IsEligible(description string) bool {
	_, ok := c.Classify(description)
	return ok
}

// Classify returns the first matching category.
func (c *KeywordClassifier) Classify(description string) (string, bool) {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return "", false
	}
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(desc, kw) {
				return r.Category, true
			}
		}
	}
	return "", false
}
