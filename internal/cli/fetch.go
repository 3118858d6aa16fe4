package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shellpin/internal/app"
)

type fetchOptions struct {
	Descriptor string
	URL        string
	Revision   string
}

func newFetchCommand() *cobra.Command {
	opts := fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Warm the snapshot cache for a pinned revision",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Environment descriptor path")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Snapshot URL (alternative to --descriptor)")
	cmd.Flags().StringVar(&opts.Revision, "revision", "", "Snapshot revision pin")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("snapshot_url", cmd.Flags().Lookup("url"))
	_ = viper.BindPFlag("snapshot_revision", cmd.Flags().Lookup("revision"))

	return cmd
}

func runFetch(ctx context.Context, cmd *cobra.Command, opts fetchOptions) error {
	service := newAppService()
	result, err := service.Fetch(ctx, app.FetchRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		URL:            resolveString(cmd, opts.URL, "snapshot_url", "url"),
		Revision:       resolveString(cmd, opts.Revision, "snapshot_revision", "revision"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("cached: %s (%d bytes)\n", result.Locator, result.Bytes)
	return nil
}
