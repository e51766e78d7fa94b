package promptline

import "strings"

// Line joins rendered segments into the final prompt: "[a]-[b] -> ".
// With no segments only the arrow is returned.
func Line(segments []string) string {
	if len(segments) == 0 {
		return "-> "
	}
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Join(segments, "]-["))
	sb.WriteString("] -> ")
	return sb.String()
}
