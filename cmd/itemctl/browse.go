package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ferdiebergado/boring/internal/browse"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	var refresh time.Duration

	cmd := &cobra.Command{
		Use:   "browse [location]",
		Short: "Open the interactive terminal client",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bopts := browse.Options{RefreshEvery: refresh}
			if len(args) == 1 {
				bopts.Start = args[0]
			}
			return browse.Run(cmd.Context(), opts.client(), bopts)
		},
	}

	cmd.Flags().DurationVar(&refresh, "refresh", 15*time.Second, "reload the list this often, 0 disables it")

	return cmd
}
