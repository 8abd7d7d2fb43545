// Package shellescape escapes and quotes arbitrary values so they survive a
// shell's parser as single literal tokens. Each supported shell has its own
// dialect table because each shell tokenizer treats a different character
// set as special. Escaping neutralizes metacharacters for interpolation into
// an unquoted context; quoting wraps the value in the dialect's quote
// characters and only escapes what could break out of them.
package shellescape

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Escaper escapes and quotes values for one resolved shell configuration.
// The shell is resolved once at construction. After that every operation is
// a pure string transform, safe for concurrent use.
type Escaper struct {
	shellName      string
	dialect        *dialect
	flagProtection bool
}

// New resolves opts against the host and returns the configured Escaper.
// Resolution failures surface here, never at escape time.
func New(ctx context.Context, opts Options) (*Escaper, error) {
	return newEscaper(ctx, opts, hostSystem())
}

func newEscaper(ctx context.Context, opts Options, sys *system) (*Escaper, error) {
	e := &Escaper{flagProtection: !opts.DisableFlagProtection}
	if opts.NoShell {
		e.dialect = noShellFor(sys)
		log.Ctx(ctx).Debug().Bool("flagProtection", e.flagProtection).Msg("resolved no-shell configuration")
		return e, nil
	}
	spec := opts.Shell
	if spec == "" {
		spec = sys.defaultShell()
	}
	name, err := resolveShellName(spec, sys)
	if err != nil {
		return nil, err
	}
	d, ok := dialectsFor(sys)[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShell, name)
	}
	e.shellName = name
	e.dialect = d
	log.Ctx(ctx).Debug().Str("shell", name).Bool("flagProtection", e.flagProtection).Msg("resolved shell dialect")
	return e, nil
}

// ShellName returns the resolved dialect name, or "" in no-shell mode.
func (e *Escaper) ShellName() string {
	return e.shellName
}

// Escape returns value escaped for interpolation into a shell command.
func (e *Escaper) Escape(value any) (string, error) {
	s, err := stringify(value)
	if err != nil {
		return "", err
	}
	s = e.dialect.escape(s)
	if e.flagProtection {
		s = e.dialect.stripFlags(s)
	}
	return s, nil
}

// EscapeAll escapes every value, preserving order and length.
func (e *Escaper) EscapeAll(values ...any) ([]string, error) {
	result := make([]string, 0, len(values))
	for _, v := range values {
		s, err := e.Escape(v)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// Quote returns value wrapped in the dialect's quote characters, escaped so
// the shell reads it back as one literal token. It fails under a no-shell
// configuration for every input.
func (e *Escaper) Quote(value any) (string, error) {
	if e.dialect.wrap == nil {
		return "", ErrNoShellQuoting
	}
	s, err := stringify(value)
	if err != nil {
		return "", err
	}
	s = e.dialect.escapeForQuote(s)
	if e.flagProtection {
		s = e.dialect.stripFlags(s)
	}
	return e.dialect.wrap(s), nil
}

// QuoteAll quotes every value, preserving order and length.
func (e *Escaper) QuoteAll(values ...any) ([]string, error) {
	result := make([]string, 0, len(values))
	for _, v := range values {
		s, err := e.Quote(v)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnstringable, value)
}
