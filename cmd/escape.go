package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/buildpeak/commitmsg/config"
	"github.com/buildpeak/commitmsg/shellescape"
)

var (
	escapeShell        string
	escapeNoShell      bool
	escapeNoProtection bool
)

func addEscapeFlags(c *cobra.Command) {
	c.Flags().StringVarP(&escapeShell, "shell", "s", "", "shell to escape for (default: the platform shell)")
	c.Flags().BoolVar(&escapeNoShell, "no-shell", false, "escape for direct execution without a shell")
	c.Flags().BoolVar(&escapeNoProtection, "no-flag-protection", false, "keep leading dashes on escaped values")
}

// escaperOptions layers the command line flags over the config file.
func escaperOptions() (shellescape.Options, error) {
	cfg, err := config.Load(afero.Afero{Fs: afero.NewOsFs()}, config.DefaultFilename)
	if err != nil {
		return shellescape.Options{}, err
	}
	opts := cfg.EscaperOptions()
	if escapeShell != "" {
		opts.Shell = escapeShell
	}
	if escapeNoShell {
		opts.NoShell = true
	}
	if escapeNoProtection {
		opts.DisableFlagProtection = true
	}
	return opts, nil
}

func stringValues(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	return values
}

var escapeCmd = &cobra.Command{
	Use:          "escape [value...]",
	Short:        "Escape values for interpolation into a shell command",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := log.Logger.WithContext(cmd.Context())
		opts, err := escaperOptions()
		if err != nil {
			return err
		}
		escaper, err := shellescape.New(ctx, opts)
		if err != nil {
			return err
		}
		escaped, err := escaper.EscapeAll(stringValues(args)...)
		if err != nil {
			return err
		}
		for _, value := range escaped {
			fmt.Fprintln(cmd.OutOrStdout(), value)
		}
		return nil
	},
}

func init() {
	addEscapeFlags(escapeCmd)
	rootCmd.AddCommand(escapeCmd)
}
