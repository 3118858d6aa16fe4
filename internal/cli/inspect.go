package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shellpin/internal/app"
)

type inspectOptions struct {
	Descriptor    string
	URL           string
	Revision      string
	AttributePath string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List package descriptors in a pinned snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Environment descriptor path")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Snapshot URL (alternative to --descriptor)")
	cmd.Flags().StringVar(&opts.Revision, "revision", "", "Snapshot revision pin")
	cmd.Flags().StringVar(&opts.AttributePath, "path", "", "Single attribute path to look up")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("snapshot_url", cmd.Flags().Lookup("url"))
	_ = viper.BindPFlag("snapshot_revision", cmd.Flags().Lookup("revision"))

	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		URL:            resolveString(cmd, opts.URL, "snapshot_url", "url"),
		Revision:       resolveString(cmd, opts.Revision, "snapshot_revision", "revision"),
		AttributePath:  opts.AttributePath,
	})
	if err != nil {
		return err
	}
	fmt.Printf("snapshot: %s (%d packages)\n", result.Locator, len(result.Packages))
	for _, descriptor := range result.Packages {
		channel := descriptor.Channel
		if channel == "" {
			channel = "-"
		}
		fmt.Printf("  %s  %s  channel=%s\n", descriptor.AttributePath, descriptor.Version, channel)
	}
	return nil
}
