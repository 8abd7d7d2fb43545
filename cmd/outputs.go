package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/buildpeak/commitmsg/action"
	"github.com/buildpeak/commitmsg/config"
)

var outputsSha string

var outputsCmd = &cobra.Command{
	Use:          "outputs",
	Short:        "Publish the commit message title and body as step outputs",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := log.Logger.WithContext(cmd.Context())
		a, err := action.New(ctx)
		if err != nil {
			return err
		}
		cfg, err := config.Load(afero.Afero{Fs: afero.NewOsFs()}, config.DefaultFilename)
		if err != nil {
			return err
		}
		// precedence: flag, then config file, then GITHUB_SHA
		if cfg.Outputs.Sha != "" {
			a.Config.Sha = cfg.Outputs.Sha
		}
		if outputsSha != "" {
			a.Config.Sha = outputsSha
		}
		return a.Run()
	},
}

func init() {
	outputsCmd.Flags().StringVar(&outputsSha, "sha", "", "commit to read instead of GITHUB_SHA")
	rootCmd.AddCommand(outputsCmd)
}
