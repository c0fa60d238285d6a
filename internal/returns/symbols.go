package returns

import "strings"

// ParseSymbolList splits raw user text into ticker symbols.
//
// Behavior:
//   - Splits on newlines and commas.
//   - Trims whitespace and uppercases each entry.
//   - Drops empties and de-duplicates, keeping first-occurrence order.
func ParseSymbolList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})

	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		s := strings.ToUpper(strings.TrimSpace(f))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
