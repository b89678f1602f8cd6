package pipeline

import "strings"

// ExtractJSON strips a Markdown code fence from model output, if present, and
// otherwise trims to the outermost JSON object. Providers are inconsistent
// about honoring "JSON only" instructions.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// Drop a language tag like "json" on the fence line.
		if idx := strings.Index(s, "\n"); idx >= 0 {
			first := strings.TrimSpace(s[:idx])
			if first == "" || !strings.ContainsAny(first, "{[") {
				s = s[idx+1:]
			}
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
