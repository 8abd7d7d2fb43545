package action

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Outputs publishes step outputs for later workflow steps.
type Outputs interface {
	Set(name, value string) error
}

// FileOutputs appends outputs to the GITHUB_OUTPUT file using the heredoc
// syntax, which is safe for multiline values.
type FileOutputs struct {
	fs        afero.Afero
	path      string
	delimiter string
}

func NewFileOutputs(fs afero.Afero, path string) *FileOutputs {
	return &FileOutputs{fs: fs, path: path, delimiter: newDelimiter()}
}

// newDelimiter matches the delimiters the GitHub runner generates. The
// random component keeps values from terminating the block early.
func newDelimiter() string {
	return "ghadelimiter_" + uuid.NewString()
}

func (o *FileOutputs) Set(name, value string) error {
	if strings.Contains(name, o.delimiter) || strings.Contains(value, o.delimiter) {
		return fmt.Errorf("output %s contains its own delimiter", name)
	}
	f, err := o.fs.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", o.path, err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, o.delimiter, value, o.delimiter)
	return err
}

// StdoutOutputs prints outputs instead of recording them, for runs outside
// the GitHub runner.
type StdoutOutputs struct {
	W io.Writer
}

func (o *StdoutOutputs) Set(name, value string) error {
	_, err := fmt.Fprintf(o.W, "%s=%s\n", name, value)
	return err
}
