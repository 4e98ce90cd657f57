package template

import "strings"

// Expand substitutes #k placeholder tokens in tmpl with the k-th entry
// of captures (index 0 is the whole match). Expansion is a single
// left-to-right pass: a capture value that itself looks like a #k token
// is never re-interpreted as a further placeholder.
//
// A # not followed by digits is literal. A placeholder whose index has
// no corresponding capture group is also left as literal text, matching
// the permissive behavior scripts have come to rely on; callers that
// want to flag it can check MaxIndex against the pattern's group count.
func Expand(tmpl string, captures []string) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '#' || i+1 >= len(tmpl) || !isDigit(tmpl[i+1]) {
			b.WriteByte(tmpl[i])
			i++
			continue
		}

		j := i + 1
		for j < len(tmpl) && isDigit(tmpl[j]) {
			j++
		}

		if k, ok := parseIndex(tmpl[i+1 : j]); ok && k < len(captures) {
			b.WriteString(captures[k])
		} else {
			b.WriteString(tmpl[i:j])
		}
		i = j
	}
	return b.String()
}

// MaxIndex returns the highest group index referenced by a placeholder
// in tmpl, or -1 when the template contains no placeholders.
func MaxIndex(tmpl string) int {
	max := -1
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '#' || i+1 >= len(tmpl) || !isDigit(tmpl[i+1]) {
			i++
			continue
		}
		j := i + 1
		for j < len(tmpl) && isDigit(tmpl[j]) {
			j++
		}
		if k, ok := parseIndex(tmpl[i+1 : j]); ok && k > max {
			max = k
		}
		i = j
	}
	return max
}

// parseIndex converts a digit run to an index. Absurdly long runs that
// would overflow are rejected so the token stays literal.
func parseIndex(digits string) (int, bool) {
	const maxDigits = 9
	if len(digits) == 0 || len(digits) > maxDigits {
		return 0, false
	}
	k := 0
	for i := 0; i < len(digits); i++ {
		k = k*10 + int(digits[i]-'0')
	}
	return k, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
