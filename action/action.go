// Package action implements the commit message action: read the message of
// the checked out commit and publish its title and body as step outputs.
package action

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/buildpeak/commitmsg/shellescape"
)

// Config is read from the environment the GitHub runner provides.
type Config struct {
	Sha        string `env:"GITHUB_SHA" envDefault:"HEAD"`
	OutputFile string `env:"GITHUB_OUTPUT"`
	Workspace  string `env:"GITHUB_WORKSPACE" envDefault:"."`
}

// Action reads the commit message for one sha and publishes the split
// message as step outputs.
type Action struct {
	Config  Config
	outputs Outputs
	execer  func(name string, arg ...string) *exec.Cmd
	ctx     context.Context
}

// New binds the runner environment. Without a GITHUB_OUTPUT file the
// outputs fall back to stdout, which keeps local runs usable.
func New(ctx context.Context) (*Action, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	a := &Action{Config: cfg, execer: exec.Command, ctx: ctx}
	if cfg.OutputFile == "" {
		a.outputs = &StdoutOutputs{W: os.Stdout}
	} else {
		a.outputs = NewFileOutputs(afero.Afero{Fs: afero.NewOsFs()}, cfg.OutputFile)
	}
	return a, nil
}

func (a *Action) Log() *zerolog.Logger {
	return log.Ctx(a.ctx)
}

// ReadMessage returns the full commit message of the configured sha.
func (a *Action) ReadMessage() (Message, error) {
	args := []string{"-C", a.Config.Workspace, "log", "-1", "--format=%B", a.Config.Sha}
	a.logEquivalentCommand("git", args)
	out, err := a.execer("git", args...).Output()
	if err != nil {
		return Message{}, fmt.Errorf("failed to read commit message for %s: %w", a.Config.Sha, err)
	}
	return SplitMessage(string(out)), nil
}

// Run executes the action: read the message, publish title and body.
func (a *Action) Run() error {
	msg, err := a.ReadMessage()
	if err != nil {
		return err
	}
	a.Log().Info().Str("title", msg.Title).Msg("read commit message")
	if err := a.outputs.Set("title", msg.Title); err != nil {
		return fmt.Errorf("failed to set title output: %w", err)
	}
	if err := a.outputs.Set("body", msg.Body); err != nil {
		return fmt.Errorf("failed to set body output: %w", err)
	}
	return nil
}

// logEquivalentCommand logs the command in a form a user could paste into
// a shell. Flag protection is off so the git flags survive verbatim.
func (a *Action) logEquivalentCommand(name string, args []string) {
	esc, err := shellescape.New(a.ctx, shellescape.Options{DisableFlagProtection: true})
	if err != nil {
		a.Log().Debug().Err(err).Msg("could not resolve a shell for command logging")
		return
	}
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	quoted, err := esc.QuoteAll(values...)
	if err != nil {
		a.Log().Debug().Err(err).Msg("could not quote command for logging")
		return
	}
	a.Log().Debug().Str("command", name+" "+strings.Join(quoted, " ")).Msg("running")
}
