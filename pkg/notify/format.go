package notify

import "strings"

// Placeholder marks a positional parameter slot in a body template.
const Placeholder = "{$}"

// Fill substitutes params into the placeholders of template, left to right.
//
// Placeholders without a matching parameter are left in the output as "{$}"
// so a short call stays visible in the delivered text. Extra parameters are
// ignored. Parameters are inserted verbatim and never rescanned.
func Fill(template string, params ...string) string {
	if len(params) == 0 || !strings.Contains(template, Placeholder) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	rest := template
	for _, p := range params {
		idx := strings.Index(rest, Placeholder)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(p)
		rest = rest[idx+len(Placeholder):]
	}
	b.WriteString(rest)
	return b.String()
}

// CountPlaceholders returns the number of non-overlapping placeholders in template.
func CountPlaceholders(template string) int {
	return strings.Count(template, Placeholder)
}
