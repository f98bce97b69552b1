package utils

import "strings"

// SplitList splits a separated list such as "a, b,,c" into its trimmed,
// non-empty items. It returns nil when nothing is left.
func SplitList(s, sep string) []string {
	var items []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
