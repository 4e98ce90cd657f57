package pattern

// Match performs a whole-string match of name against the compiled
// pattern. On success it returns the ordered capture list, where index
// 0 is the entire matched name and indices 1..N are the parenthesized
// groups in left-to-right order of opening parenthesis. A group that
// did not participate in the match yields an empty string.
//
// A failed match returns (nil, false). That is routine, not an error:
// unrelated files simply don't match.
func (c *Compiled) Match(name string) ([]string, bool) {
	idx := c.re.FindStringSubmatchIndex(name)
	if idx == nil || idx[0] != 0 || idx[1] != len(name) {
		return nil, false
	}

	captures := make([]string, c.groups+1)
	for i := 0; i <= c.groups; i++ {
		start, end := idx[2*i], idx[2*i+1]
		if start < 0 {
			continue
		}
		captures[i] = name[start:end]
	}
	return captures, true
}
