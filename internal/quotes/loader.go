package quotes

import (
	"os"
	"strings"
)

// Placeholder is returned as the sole candidate when a quotes source is
// missing or empty, so the picker always has a non-empty pool.
const Placeholder = "no quotes available"

// Load returns all non-empty trimmed lines of the quotes file at path, or a
// single placeholder when the file is missing, unreadable, or empty.
func Load(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{Placeholder}
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return []string{Placeholder}
	}
	return lines
}

// LoadTagged returns the lines of path carrying a "[tag]" prefix, with the
// prefix stripped and the remainder trimmed. Falls back to the placeholder
// when no line matches.
func LoadTagged(path, tag string) []string {
	prefix := "[" + tag + "]"

	var lines []string
	for _, line := range Load(path) {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		quote := strings.TrimSpace(strings.TrimPrefix(line, prefix))
		if quote != "" {
			lines = append(lines, quote)
		}
	}
	if len(lines) == 0 {
		return []string{Placeholder}
	}
	return lines
}
