package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/buildpeak/commitmsg/shellescape"
)

var quoteCmd = &cobra.Command{
	Use:          "quote [value...]",
	Short:        "Quote values as single shell arguments",
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
		quoted, err := escaper.QuoteAll(stringValues(args)...)
		if err != nil {
			return err
		}
		for _, value := range quoted {
			fmt.Fprintln(cmd.OutOrStdout(), value)
		}
		return nil
	},
}

func init() {
	addEscapeFlags(quoteCmd)
	rootCmd.AddCommand(quoteCmd)
}
