package shellescape

import (
	"regexp"
	"sort"
	"strings"
)

// dialect holds the escaping strategy for one shell. escapeForQuote and wrap
// are nil in no-shell mode, where quoting has nothing to quote against.
type dialect struct {
	escape         func(string) string
	escapeForQuote func(string) string
	wrap           func(string) string
	stripFlags     func(string) string
}

var unixDialects = map[string]*dialect{
	"bash": {escape: bashEscape, escapeForQuote: unixQuoteEscape, wrap: singleQuoteWrap, stripFlags: unixStripFlags},
	"csh":  {escape: cshEscape, escapeForQuote: cshQuoteEscape, wrap: singleQuoteWrap, stripFlags: unixStripFlags},
	"dash": {escape: dashEscape, escapeForQuote: unixQuoteEscape, wrap: singleQuoteWrap, stripFlags: unixStripFlags},
	// sh gets the bash rules: a /bin/sh that is not a symlink to a known
	// shell is usually bash in POSIX mode, which still brace-expands, and
	// the extra escapes parse as literals under dash
	"sh":  {escape: bashEscape, escapeForQuote: unixQuoteEscape, wrap: singleQuoteWrap, stripFlags: unixStripFlags},
	"zsh": {escape: zshEscape, escapeForQuote: unixQuoteEscape, wrap: singleQuoteWrap, stripFlags: unixStripFlags},
}

var windowsDialects = map[string]*dialect{
	"cmd":        {escape: cmdEscape, escapeForQuote: cmdQuoteEscape, wrap: doubleQuoteWrap, stripFlags: cmdStripFlags},
	"powershell": {escape: powershellEscape, escapeForQuote: powershellQuoteEscape, wrap: singleQuoteWrap, stripFlags: powershellStripFlags},
}

var (
	unixNoShell    = &dialect{escape: sanitize, stripFlags: unixStripFlags}
	windowsNoShell = &dialect{escape: sanitize, stripFlags: cmdStripFlags}
)

func dialectsFor(sys *system) map[string]*dialect {
	if sys.windows() {
		return windowsDialects
	}
	return unixDialects
}

func noShellFor(sys *system) *dialect {
	if sys.windows() {
		return windowsNoShell
	}
	return unixNoShell
}

// controlChars cannot be escaped meaningfully and are defined to vanish
var controlChars = strings.NewReplacer(
	"\u0000", "",
	"\u0008", "",
	"\u001b", "",
	"\u009b", "",
)

var newlines = regexp.MustCompile("\r?\n")

// sanitize strips unescapable control characters and carriage returns that
// are not part of a CRLF pair. Stripping twice is the same as stripping once.
func sanitize(s string) string {
	s = controlChars.Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' && (i+1 >= len(s) || s[i+1] != '\n') {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Platform describes one dialect table.
type Platform struct {
	Name    string
	Shells  []string
	Current bool
}

// Platforms lists the supported shells of both dialect tables and marks the
// one the host would use.
func Platforms() []Platform {
	sys := hostSystem()
	return []Platform{
		{Name: "unix", Shells: dialectNames(unixDialects), Current: !sys.windows()},
		{Name: "windows", Shells: dialectNames(windowsDialects), Current: sys.windows()},
	}
}

func dialectNames(table map[string]*dialect) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
