package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/officedays/officedays/internal/attendance"
	"github.com/officedays/officedays/internal/config"
	"github.com/officedays/officedays/internal/locator"
	"github.com/officedays/officedays/internal/report"
)

const version = "0.2.3"

const helpText = `OfficeDays v%s
Usage: officedays [OPTIONS]

Options:
    -e                  Edit the configuration file for the current year
    -h                  Show this help message
    <no options>        Run the program with the configuration file for the current year

Configuration File:
    The program looks for the configuration file in:
        macOS: ~/Library/Application Support/officedays/<year>.toml
        Linux: ~/.config/officedays/<year>.toml
    Set OFFICEDAYS_CONFIG_DIR to use a different base directory.
`

// invalidArgumentError is reported with a hint pointing at -h
type invalidArgumentError struct {
	arg string
	err error
}

func (e *invalidArgumentError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("Invalid argument: %v", e.err)
	}
	return fmt.Sprintf("Invalid argument '%s'", e.arg)
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

// execute runs the CLI and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, now func() time.Time) int {
	rootCmd := newRootCmd(stdout, stderr, now)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var invalid *invalidArgumentError
		var notFound *locator.NotFoundError

		switch {
		case errors.As(err, &invalid):
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fmt.Fprintln(stderr, "Use '-h' to see available options.")
		case errors.As(err, &notFound):
			fmt.Fprintln(stderr, notFound.Error())
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer, now func() time.Time) *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "officedays",
		Short: "Quarterly office attendance tracker",
		Long:  "Report how many office days are still required this quarter, based on the configuration file for the current year",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &invalidArgumentError{arg: args[0]}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			logger, closeLogger, err := newLogger(settings, stderr)
			if err != nil {
				return err
			}
			defer closeLogger()

			loc, err := newLocator(settings)
			if err != nil {
				return err
			}

			today := now()
			configPath, err := loc.Resolve(today.Year())
			if err != nil {
				return err
			}

			if edit {
				return editConfig(cmd.Context(), settings, configPath, stderr, logger)
			}
			return runReport(configPath, today, stdout, logger)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprintf(c.OutOrStdout(), helpText, version)
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if arg, ok := flagErrorArg(err); ok {
			return &invalidArgumentError{arg: arg}
		}
		return &invalidArgumentError{err: err}
	})

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Edit the configuration file for the current year")

	return cmd
}

// flagErrorArg extracts the offending token from a pflag parse error
func flagErrorArg(err error) (string, bool) {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		if i := strings.LastIndex(msg, " in "); i >= 0 {
			return msg[i+len(" in "):], true
		}
	case strings.HasPrefix(msg, "unknown flag: "):
		return strings.TrimPrefix(msg, "unknown flag: "), true
	case strings.HasPrefix(msg, "bad flag syntax: "):
		return strings.TrimPrefix(msg, "bad flag syntax: "), true
	}
	return "", false
}

func newLocator(settings *config.Settings) (*locator.Locator, error) {
	if settings.ConfigDir != "" {
		return locator.New(settings.ConfigDir), nil
	}
	return locator.FromUserConfigDir()
}

func runReport(configPath string, today time.Time, stdout io.Writer, logger *zap.Logger) error {
	cfg, err := config.Load(configPath, logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	summary := attendance.Summarize(cfg, today)

	logger.Debug("Attendance summary",
		zap.String("quarter", summary.Quarter.Label()),
		zap.Int("total", summary.Total),
		zap.Int("worked", summary.Worked),
		zap.Int("scheduled", summary.Scheduled))

	return report.New(stdout).Render(summary)
}
