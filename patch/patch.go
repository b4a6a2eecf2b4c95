// Package patch rewrites configuration file content with ordered,
// first-match-wins line rules and guarded substring replacements. It is
// pure text transformation; callers own all file I/O.
package patch

import "strings"

// LineRule pairs a predicate over a line's trimmed content with a
// full-line replacement. Rules are evaluated in declaration order per
// line and the first match wins.
type LineRule struct {
	Match   func(trimmed string) bool
	Rewrite func(line string) string
}

// ApplyLineRules rewrites content line by line. Lines that match no rule
// pass through unchanged; line count and trailing-newline semantics are
// preserved.
func ApplyLineRules(content string, rules []LineRule) string {
	trailing := strings.HasSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	if trailing {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, rule := range rules {
			if rule.Match(trimmed) {
				lines[i] = rule.Rewrite(line)
				break
			}
		}
	}

	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// KeyValue returns the rules that force KEY=value in an env-style file:
// a commented-out entry (any "#" prefix mentioning the key) is uncommented
// and overwritten, and an already-enabled "KEY=" entry has its value
// forced. Other lines are untouched.
func KeyValue(key, value string) []LineRule {
	replacement := key + "=" + value
	return []LineRule{
		{
			Match: func(trimmed string) bool {
				return strings.HasPrefix(trimmed, "#") && strings.Contains(trimmed, key)
			},
			Rewrite: func(string) string { return replacement },
		},
		{
			Match: func(trimmed string) bool {
				return strings.HasPrefix(trimmed, key+"=")
			},
			Rewrite: func(string) string { return replacement },
		},
	}
}

// KeyValueWhen forces KEY=value only when the line's current value is one
// of the listed values; any other value is left as-is. Commented lines are
// not matched.
func KeyValueWhen(key, value string, current ...string) []LineRule {
	replacement := key + "=" + value
	return []LineRule{
		{
			Match: func(trimmed string) bool {
				if !strings.HasPrefix(trimmed, key) {
					return false
				}
				for _, v := range current {
					if strings.Contains(trimmed, "="+v) {
						return true
					}
				}
				return false
			},
			Rewrite: func(string) string { return replacement },
		},
	}
}

// Replacement is one whole-text substitution. When Guard is non-empty and
// already present in the content, the replacement is skipped, which makes
// insertions idempotent.
type Replacement struct {
	Search  string
	Replace string
	Guard   string
}

// ApplyReplacements applies each replacement to the full content in order.
func ApplyReplacements(content string, replacements []Replacement) string {
	for _, r := range replacements {
		if r.Guard != "" && strings.Contains(content, r.Guard) {
			continue
		}
		content = strings.ReplaceAll(content, r.Search, r.Replace)
	}
	return content
}
