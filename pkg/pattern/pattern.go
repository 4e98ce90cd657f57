package pattern

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/ren/pkg/errors"
	"github.com/arthur-debert/ren/pkg/logging"
)

// Mode selects how a user-supplied pattern expression is interpreted.
type Mode int

const (
	// ModeWildcard treats the expression as a shell-style wildcard
	// where * and ? become capture groups.
	ModeWildcard Mode = iota
	// ModeRegex uses the expression verbatim as a regular expression.
	ModeRegex
)

// Compiled is a pattern ready to be matched against file names. The
// underlying expression is anchored: it matches whole names only, never
// substrings.
type Compiled struct {
	re     *regexp.Regexp
	groups int
	mode   Mode
	source string
}

// Compile translates expr according to mode and compiles it. An
// expression that does not compile (in either mode, after translation)
// fails with a pattern error before any file is examined.
func Compile(expr string, mode Mode) (*Compiled, error) {
	logger := logging.GetLogger("pattern")

	src := expr
	if mode == ModeWildcard {
		src = translateWildcard(expr)
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPattern, "invalid pattern %q", expr).
			WithDetail("translated", src)
	}

	logger.Debug().
		Str("pattern", expr).
		Str("regex", src).
		Int("groups", re.NumSubexp()).
		Msg("pattern compiled")

	return &Compiled{
		re:     re,
		groups: re.NumSubexp(),
		mode:   mode,
		source: expr,
	}, nil
}

// Groups returns the number of capture groups the pattern defines,
// not counting the synthetic group 0.
func (c *Compiled) Groups() int {
	return c.groups
}

// Source returns the original expression as the user supplied it.
func (c *Compiled) Source() string {
	return c.source
}

// String returns the regular expression the pattern compiled to.
func (c *Compiled) String() string {
	return c.re.String()
}

// translateWildcard converts a shell-style wildcard to a regular
// expression, character by character:
//
//	*       a capture group matching any run of characters
//	?       a capture group matching exactly one character
//	.       a literal dot
//	space   any single whitespace character
//	[ ]     passed through, so users can write explicit character classes
//
// Every other regexp metacharacter is escaped. The result is anchored
// at both ends so partial matches never occur.
func translateWildcard(expr string) string {
	var b strings.Builder
	b.WriteByte('^')
	for _, r := range expr {
		switch r {
		case '*':
			b.WriteString("(.*)")
		case '?':
			b.WriteString("(.)")
		case '.':
			b.WriteString(`\.`)
		case ' ':
			b.WriteString(`\s`)
		case '[', ']':
			b.WriteRune(r)
		case '\\', '+', '(', ')', '|', '^', '$', '{', '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('$')
	return b.String()
}
