package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// Issue captures a validation problem in a knowledge base.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("knowledge base validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims whitespace, resolves rule guards, and validates a spec.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}

	spec.UnknownOption = strings.TrimSpace(spec.UnknownOption)
	if spec.UnknownOption == "" {
		spec.UnknownOption = DefaultUnknownOption
	}

	if len(spec.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	questions := map[string]Question{}
	position := map[string]int{}
	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.ID = strings.TrimSpace(question.ID)
		if question.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := questions[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		}

		question.Text = strings.TrimSpace(question.Text)
		if question.Text == "" {
			collector.add(prefix+".text", "is required")
		}
		question.Guidance = strings.TrimSpace(question.Guidance)

		question.Options = normalizeStringSlice(question.Options)
		if len(question.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		}
		seenOptions := map[string]struct{}{}
		for optionIndex, option := range question.Options {
			field := fmt.Sprintf("%s.options[%d]", prefix, optionIndex)
			if option == "" {
				collector.add(field, "is required")
				continue
			}
			if _, exists := seenOptions[option]; exists {
				collector.add(field, fmt.Sprintf("duplicate option %q", option))
			}
			seenOptions[option] = struct{}{}
		}

		if question.ID != "" {
			if _, exists := questions[question.ID]; !exists {
				questions[question.ID] = question
				position[question.ID] = i
			}
		}
		spec.Questions[i] = question
	}

	tests := map[string]struct{}{}
	for i, test := range spec.Tests {
		prefix := fmt.Sprintf("tests[%d]", i)
		test.ID = strings.TrimSpace(test.ID)
		test.Name = strings.TrimSpace(test.Name)
		test.Explanation = strings.TrimSpace(test.Explanation)
		if test.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := tests[test.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", test.ID))
		} else {
			tests[test.ID] = struct{}{}
		}
		spec.Tests[i] = test
	}

	if len(spec.Rules) == 0 {
		collector.add("rules", "must include at least one entry")
	}
	defaults := 0
	ruleIDs := map[string]struct{}{}
	for i, rule := range spec.Rules {
		prefix := fmt.Sprintf("rules[%d]", i)
		rule.ID = strings.TrimSpace(rule.ID)
		if rule.ID == "" {
			rule.ID = fmt.Sprintf("rule-%d", i+1)
		}
		// Generated ids share the namespace of explicit ones.
		if _, exists := ruleIDs[rule.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", rule.ID))
		} else {
			ruleIDs[rule.ID] = struct{}{}
		}
		rule.Test = strings.TrimSpace(rule.Test)
		if rule.Test == "" {
			collector.add(prefix+".test", "is required")
		} else if _, ok := tests[rule.Test]; !ok {
			collector.add(prefix+".test", fmt.Sprintf("unknown test %q", rule.Test))
		}

		if rule.Default {
			defaults++
			if defaults > 1 {
				collector.add(prefix+".default", "only one default rule is allowed")
			}
			if len(rule.When) > 0 {
				collector.add(prefix+".when", "must be empty for a default rule")
			}
		} else if len(rule.When) == 0 {
			collector.add(prefix+".when", "must include at least one condition")
		}

		keys := make([]string, 0, len(rule.When))
		for rawID := range rule.When {
			keys = append(keys, rawID)
		}
		sort.Strings(keys)
		conditions := make([]Condition, 0, len(rule.When))
		for _, rawID := range keys {
			id := strings.TrimSpace(rawID)
			value := strings.TrimSpace(rule.When[rawID])
			field := fmt.Sprintf("%s.when.%s", prefix, id)
			question, ok := questions[id]
			if !ok {
				collector.add(field, fmt.Sprintf("unknown question %q", id))
				continue
			}
			if value == spec.UnknownOption {
				collector.add(field, fmt.Sprintf("cannot require %q", value))
				continue
			}
			if !question.HasOption(value) {
				collector.add(field, fmt.Sprintf("unknown option %q", value))
				continue
			}
			conditions = append(conditions, Condition{Question: id, Value: value})
		}
		sort.Slice(conditions, func(a, b int) bool {
			return position[conditions[a].Question] < position[conditions[b].Question]
		})
		rule.conditions = conditions
		spec.Rules[i] = rule
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
