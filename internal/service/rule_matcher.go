package service

import (
	"strings"

	"ccc-smartassist/internal/models"
)

// RuleMatcher performs deterministic matching of user messages against manual
// rules. Both variants consider active rules only, compare case-insensitively
// and are pure functions of their inputs.
type RuleMatcher struct{}

func NewRuleMatcher() *RuleMatcher {
	return &RuleMatcher{}
}

// MatchExact returns the response of the first active rule whose trigger
// equals the message.
func (m *RuleMatcher) MatchExact(message string, rules []models.ManualRule) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if strings.ToLower(rule.Trigger) == lower {
			return rule.Response, true
		}
	}

	return "", false
}

// MatchSubstring returns the response of the first active rule whose trigger
// is contained in the message. Rules are scanned in storage order; when a
// message contains several triggers, the earliest-stored rule wins.
func (m *RuleMatcher) MatchSubstring(message string, rules []models.ManualRule) (string, bool) {
	lower := strings.ToLower(message)

	for _, rule := range rules {
		if !rule.Active {
			continue
		}
		if rule.Trigger != "" && strings.Contains(lower, strings.ToLower(rule.Trigger)) {
			return rule.Response, true
		}
	}

	return "", false
}
