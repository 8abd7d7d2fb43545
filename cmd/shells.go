package cmd

import (
	"fmt"
	"strings"

	"github.com/heroku/color"
	"github.com/spf13/cobra"

	"github.com/buildpeak/commitmsg/shellescape"
)

var shellsCmd = &cobra.Command{
	Use:   "shells",
	Short: "List the supported shells for each platform",
	Run: func(cmd *cobra.Command, args []string) {
		current := color.New(color.FgGreen, color.Bold).SprintFunc()
		for _, platform := range shellescape.Platforms() {
			name := platform.Name
			if platform.Current {
				name = current(name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(platform.Shells, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(shellsCmd)
}
