package shellescape

import (
	"regexp"
	"strings"
)

// psWhitespace matches the characters PowerShell tokenizes on, which include
// several Unicode space variants beyond the ASCII set.
const psWhitespace = `\s\x{0085}\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	psLeadingAtHash = regexp.MustCompile(`(^|[` + psWhitespace + `])([@#])`)
	psRedirection   = regexp.MustCompile(`(^|[` + psWhitespace + `])([*1-6]?)>`)
	psMeta          = regexp.MustCompile("([\"$&'(),;<{|}‘’‚‛“”„])")
	psHasWhitespace = regexp.MustCompile(`[` + psWhitespace + `]`)
	psSingleQuotes  = regexp.MustCompile("(['‘’‚‛])")
	psBackslashRuns = regexp.MustCompile(`(\\+)("|$)`)

	cmdQuotedQuotes      = regexp.MustCompile(`(\\*)"`)
	cmdFlagPrefix        = regexp.MustCompile(`^[-/]+`)
	powershellFlagPrefix = regexp.MustCompile("^(`?-)+")
)

// cmdEscape walks the value tracking double-quote parity the way cmd.exe
// does: each doubled quote toggles between quoted and unquoted parsing, and
// metacharacters only need a caret while unquoted.
func cmdEscape(s string) string {
	s = sanitize(s)
	s = newlines.ReplaceAllString(s, " ")
	var b strings.Builder
	b.Grow(len(s))
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`""`)
			quoted = !quoted
		case '%', '&', '<', '>', '^', '|':
			if !quoted {
				b.WriteByte('^')
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// cmdQuoteEscape doubles embedded quotes along with any run of backslashes
// directly before them, so the quotes survive cmd.exe's argument parsing.
func cmdQuoteEscape(s string) string {
	return cmdQuotedQuotes.ReplaceAllString(sanitize(s), `${1}${1}""`)
}

func powershellEscape(s string) string {
	s = sanitize(s)
	s = strings.ReplaceAll(s, "`", "``")
	s = newlines.ReplaceAllString(s, " ")
	// @ splats and # comments only at the start of a token
	s = psLeadingAtHash.ReplaceAllString(s, "${1}`${2}")
	s = psRedirection.ReplaceAllString(s, "${1}${2}`>")
	return psMeta.ReplaceAllString(s, "`${1}")
}

// powershellQuoteEscape doubles single-quote variants for a single-quoted
// string. When the value contains whitespace PowerShell requotes it before
// handing it to a native command, so backslash runs before a double quote
// or at the end of the value have to be doubled too.
func powershellQuoteEscape(s string) string {
	s = sanitize(s)
	s = psSingleQuotes.ReplaceAllString(s, "${1}${1}")
	if psHasWhitespace.MatchString(s) {
		s = psBackslashRuns.ReplaceAllString(s, "${1}${1}${2}")
	}
	return s
}

func doubleQuoteWrap(s string) string {
	return `"` + s + `"`
}

func cmdStripFlags(s string) string {
	return cmdFlagPrefix.ReplaceAllString(s, "")
}

func powershellStripFlags(s string) string {
	return powershellFlagPrefix.ReplaceAllString(s, "")
}
