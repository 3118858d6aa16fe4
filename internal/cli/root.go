package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shellpin/internal/app"
	"shellpin/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "SHELLPIN"

// newAppService is a seam for tests to inject a stubbed service.
var newAppService = func() app.Service {
	return app.NewService(cacheDir())
}

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	CacheDir   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "shellpin",
		Short:   "Reproducible environment resolver and composer",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.CacheDir, "cache-dir", "", "Snapshot cache directory")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("cache_dir", cmd.PersistentFlags().Lookup("cache-dir"))

	cmd.AddCommand(newResolveCommand())
	cmd.AddCommand(newEnterCommand())
	cmd.AddCommand(newFetchCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newValidateCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("shellpin")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/shellpin")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// cacheDir resolves the snapshot cache location: flag/env first, then
// the user cache dir, then a working-directory fallback.
func cacheDir() string {
	if configured := strings.TrimSpace(viper.GetString("cache_dir")); configured != "" {
		return configured
	}
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "shellpin")
	}
	return ".shellpin-cache"
}

func exitCodeForError(err error) int {
	var resolution types.ResolutionError
	if errors.As(err, &resolution) {
		return 4
	}
	var syntax types.DescriptorSyntaxError
	if errors.As(err, &syntax) {
		return 2
	}
	var integrity types.IntegrityError
	if errors.As(err, &integrity) {
		return 3
	}
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		if strings.HasPrefix(message, "snapshot index corrupt") {
			return 5
		}
		return 2
	case errbuilder.CodeDeadlineExceeded:
		return 6
	case errbuilder.CodeUnavailable:
		return 3
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
