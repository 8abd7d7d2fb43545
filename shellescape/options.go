package shellescape

// Options configure an Escaper. The zero value escapes for the platform
// default shell with flag protection enabled.
type Options struct {
	// Shell is the name or path of the shell the output is destined for.
	// Empty means the platform default (/bin/sh, or %ComSpec% on Windows).
	Shell string
	// NoShell escapes for direct process execution without an interpreter.
	// It takes precedence over Shell. Quoting is unavailable in this mode.
	NoShell bool
	// DisableFlagProtection keeps leading option dashes on escaped values
	// instead of stripping them.
	DisableFlagProtection bool
}
