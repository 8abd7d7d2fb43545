package shellescape

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// # starts a comment and ~ expands to a home directory, but only at the
	// start of a word
	unixLeadingHashTilde = regexp.MustCompile(`(^|\s)([#~])`)
	cshLeadingTilde      = regexp.MustCompile(`(^|\s)(~)`)

	bashMeta = regexp.MustCompile("([\"$&'()*;<>?`{|])")
	dashMeta = regexp.MustCompile("([\"$&'()*;<>?`|])")
	// zsh also expands =name to an executable path wherever a word starts,
	// so = is part of its set
	zshMeta = regexp.MustCompile("([\"$&'()*;<=>?`\\[\\]{|}])")
	cshMeta = regexp.MustCompile("([\"#$&'()*;<>?`{|])")

	unixFlagPrefix = regexp.MustCompile(`^-+`)
)

func bashEscape(s string) string {
	s = sanitize(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = newlines.ReplaceAllString(s, " ")
	s = unixLeadingHashTilde.ReplaceAllString(s, `${1}\${2}`)
	s = bashMeta.ReplaceAllString(s, `\${1}`)
	return escapeTildeAfterAssign(s)
}

func dashEscape(s string) string {
	s = sanitize(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = newlines.ReplaceAllString(s, " ")
	s = unixLeadingHashTilde.ReplaceAllString(s, `${1}\${2}`)
	return dashMeta.ReplaceAllString(s, `\${1}`)
}

func zshEscape(s string) string {
	s = sanitize(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = newlines.ReplaceAllString(s, " ")
	s = unixLeadingHashTilde.ReplaceAllString(s, `${1}\${2}`)
	return zshMeta.ReplaceAllString(s, `\${1}`)
}

func cshEscape(s string) string {
	s = sanitize(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = newlines.ReplaceAllString(s, " ")
	s = cshLeadingTilde.ReplaceAllString(s, `${1}\${2}`)
	s = cshMeta.ReplaceAllString(s, `\${1}`)
	s = escapeHistoryExpansion(s)
	return quoteCshUnsafeRunes(s)
}

// unixQuoteEscape prepares a value for single-quote wrapping. Embedded
// single quotes close the string, insert a literal quote, and reopen it.
func unixQuoteEscape(s string) string {
	return strings.ReplaceAll(sanitize(s), "'", `'\''`)
}

func cshQuoteEscape(s string) string {
	s = sanitize(s)
	s = strings.ReplaceAll(s, "'", `'\''`)
	return escapeHistoryExpansion(s)
}

// escapeHistoryExpansion escapes ! except at the end of the string, where
// csh does not treat it as a history reference.
func escapeHistoryExpansion(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '!' && i != len(s)-1 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// escapeTildeAfterAssign escapes ~ after : or = when what follows still
// triggers tilde expansion, as in PATH=~/bin or PATH=$PATH:~/bin.
func escapeTildeAfterAssign(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '~' && i > 0 && (s[i-1] == ':' || s[i-1] == '=') && tildeExpands(s, i+1) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func tildeExpands(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	switch s[i] {
	case ' ', '\t', '\n', '\r', '+', '-', '/', '0', ':', '=':
		return true
	}
	return false
}

// quoteCshUnsafeRunes wraps every rune whose UTF-8 encoding contains the
// byte 0xA0 in its own quoted segment. csh misparses those bytes unquoted.
// Bytes that do not decode as UTF-8 pass through untouched.
func quoteCshUnsafeRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		if size > 1 && runeContainsByte(r, 0xa0) {
			b.WriteByte('\'')
			b.WriteString(s[i : i+size])
			b.WriteByte('\'')
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func runeContainsByte(r rune, want byte) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, c := range buf[:n] {
		if c == want {
			return true
		}
	}
	return false
}

func singleQuoteWrap(s string) string {
	return "'" + s + "'"
}

func unixStripFlags(s string) string {
	return unixFlagPrefix.ReplaceAllString(s, "")
}
