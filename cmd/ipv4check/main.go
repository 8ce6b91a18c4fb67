package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tasneemo-o/ipv4-checker/pkg/config"
	"github.com/tasneemo-o/ipv4-checker/pkg/logger"
)

// Build info - injected via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// errCheckFailed makes the process exit with status 1 without printing an
// extra error line; the command output already explains the failure.
var errCheckFailed = errors.New("check failed")

// Config is read from the environment (and an optional .env file).
type Config struct {
	LogLevel  string `env:"IPV4CHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"IPV4CHECK_LOG_FORMAT" envDefault:"text"`
	CasesPath string `env:"IPV4CHECK_CASES"`
	// Any non-empty value disables colour, see https://no-color.org.
	NoColor string `env:"NO_COLOR"`
}

// runIDKey tags every log record of one invocation.
type runIDKey struct{}

type app struct {
	cfg     Config
	noColor bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		logLevel  string
		logFormat string
		noColor   bool
	)

	root := &cobra.Command{
		Use:           "ipv4check",
		Short:         "Validate dotted-decimal IPv4 addresses",
		Long:          `ipv4check validates that text is a well-formed dotted-decimal IPv4 address.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				a.cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				a.cfg.LogFormat = logFormat
			}
			a.noColor = a.cfg.NoColor != ""
			if flags.Changed("no-color") {
				a.noColor = noColor
			}

			level, err := logger.ParseLevel(a.cfg.LogLevel)
			if err != nil {
				return err
			}
			format, err := logger.ParseFormat(a.cfg.LogFormat)
			if err != nil {
				return err
			}

			a.log = logger.New(
				logger.WithLevel(level),
				logger.WithFormat(format),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithAttr(logger.Component("ipv4check")),
				logger.WithContextValue("run_id", runIDKey{}),
			)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, runIDKey{}, uuid.NewString()))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	pf.BoolVar(&noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(newCheckCmd(a), newDemoCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
