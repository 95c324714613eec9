package utils

import "strings"

// SplitList splits a comma separated setting, trimming blanks and dropping empty entries.
func SplitList(s string) []string {
	var result []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}

	return result
}
