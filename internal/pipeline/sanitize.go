package pipeline

import (
	"regexp"
	"strings"
)

// pluginOutputTag matches the scanner's wrapper tags around plugin output.
// Only this specific pair is stripped; any other markup is left intact.
var pluginOutputTag = regexp.MustCompile(`(?i)</?plugin_output>`)

// SanitizePluginText removes <plugin_output> wrapper tags (case-insensitive)
// from raw plugin text and trims surrounding whitespace. Idempotent.
func SanitizePluginText(raw string) string {
	return strings.TrimSpace(pluginOutputTag.ReplaceAllString(raw, ""))
}
