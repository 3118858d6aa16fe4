package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shellpin/internal/app"
)

type resolveOptions struct {
	Descriptor   string
	OutputDir    string
	OverrideMode string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a descriptor and materialize the environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Environment descriptor path")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.OverrideMode, "override-mode", "warn", "Variable override handling (warn|silent)")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("override_mode", cmd.Flags().Lookup("override-mode"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		OutputDir:      resolveString(cmd, opts.OutputDir, "output", "output"),
		OverrideMode:   resolveString(cmd, opts.OverrideMode, "override_mode", "override-mode"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("resolved: %s (%d inputs, %d warnings)\n", result.Locator, len(result.Inputs), len(result.Warnings))
	return nil
}
