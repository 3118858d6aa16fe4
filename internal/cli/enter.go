package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shellpin/internal/app"
)

type enterOptions struct {
	Descriptor   string
	OverrideMode string
}

func newEnterCommand() *cobra.Command {
	opts := enterOptions{}
	cmd := &cobra.Command{
		Use:   "enter [-- command...]",
		Short: "Resolve a descriptor and start a session in the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnter(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Environment descriptor path")
	cmd.Flags().StringVar(&opts.OverrideMode, "override-mode", "warn", "Variable override handling (warn|silent)")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("override_mode", cmd.Flags().Lookup("override-mode"))

	return cmd
}

func runEnter(ctx context.Context, cmd *cobra.Command, opts enterOptions, args []string) error {
	service := newAppService()
	return service.Enter(ctx, app.EnterRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		OverrideMode:   resolveString(cmd, opts.OverrideMode, "override_mode", "override-mode"),
		Command:        args,
	})
}
