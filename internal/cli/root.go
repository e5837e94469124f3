package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ceramicstudio/create-ceramic-app/internal/branding"
	"github.com/ceramicstudio/create-ceramic-app/internal/config"
	"github.com/ceramicstudio/create-ceramic-app/internal/logger"
	"github.com/ceramicstudio/create-ceramic-app/internal/npm"
	"github.com/ceramicstudio/create-ceramic-app/internal/scaffold"
	"github.com/ceramicstudio/create-ceramic-app/internal/source"
	"github.com/ceramicstudio/create-ceramic-app/internal/toolchain"
	"github.com/ceramicstudio/create-ceramic-app/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolder.

Asks for a project name, clones the ComposeDB example app into ./<name>,
installs its dependencies with npm and offers to start the dev server.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runScaffold,
}

// Execute runs the root command with build info injected via ldflags.
// SIGINT and SIGTERM cancel the command context.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runScaffold(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.New(cmd.ErrOrStderr(), config.LogLevel())

	checker := toolchain.NewChecker(toolchain.DefaultTools(config.GitBin(), config.NpmBin()))
	warnToolchain(ctx, checker, func(r toolchain.Result) {
		log.Warn("toolchain check", "tool", r.Tool.Name, "status", string(r.Status), "err", r.Err)
	})

	fetcher := &source.GitFetcher{Bin: config.GitBin()}
	if logger.ParseLevel(config.LogLevel()) == slog.LevelDebug {
		fetcher.Progress = cmd.ErrOrStderr()
	}

	p := ui.New(cmd.InOrStdin(), cmd.OutOrStdout())
	orch := scaffold.New(p,
		fetcher,
		&npm.Runner{Bin: config.NpmBin(), Input: p.Stdin, Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		log,
	)
	orch.Inspector = &scaffold.PackageInspector{NodeVersion: checker.NodeVersion}

	if _, err := orch.Run(ctx); err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		return err
	}
	return nil
}

// warnToolchain reports every tool that is missing or too old. It never
// stops the session; git and npm failures surface again in their phases.
func warnToolchain(ctx context.Context, c *toolchain.Checker, warn func(toolchain.Result)) {
	for _, r := range c.Check(ctx) {
		if r.Status != toolchain.StatusOK {
			warn(r)
		}
	}
}
