// Package main provides the entry point for the api-surface-check CLI tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sgaunet/api-surface-check/internal/logger"
	"github.com/sgaunet/api-surface-check/internal/security"
	"github.com/sgaunet/api-surface-check/internal/ui"
	"github.com/sgaunet/api-surface-check/pkg/config"
	"github.com/sgaunet/api-surface-check/pkg/git"
	"github.com/sgaunet/api-surface-check/pkg/platform"
	"github.com/sgaunet/api-surface-check/pkg/probe"
	"github.com/sgaunet/bullets"
	"github.com/spf13/cobra"
)

var (
	logLevel     string
	configPath   string
	repoFlag     string
	platformFlag string
	interactive  bool
)

var rootCmd = &cobra.Command{
	Use:   "api-surface-check",
	Short: "Check that the forge client still exposes the pull request review API",
	Long: `api-surface-check guards the Dependabot auto-approve workflow against client
library upgrades that remove the operations it relies on. It verifies the
listReviews and createReview capabilities, then lists the pull requests of the
triggering repository once and logs the first one. Nothing is written.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runCheck(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", security.SanitizeError(err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Configuration file (default ~/.config/api-surface-check/config.yml)")
	rootCmd.Flags().StringVarP(&repoFlag, "repo", "r", "",
		"Repository to probe as owner/repo (default: CI event, then git origin)")
	rootCmd.Flags().StringVarP(&platformFlag, "platform", "p", "",
		"Force the platform (github, gitlab)")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"Prompt for the repository when it cannot be resolved")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// namedClient is what the check needs from a forge client beyond the
// capabilities probed at runtime.
type namedClient interface {
	PlatformName() string
}

// checker wires configuration, repository resolution and the validator.
type checker struct {
	log          *bullets.Logger
	cfg          *config.Config
	resolver     *resolver
	platformFlag string
	newClient    func(p git.Platform, cfg *config.Config, log *bullets.Logger) (namedClient, error)
}

func newProviderClient(p git.Platform, cfg *config.Config, log *bullets.Logger) (namedClient, error) {
	return platform.NewProvider(p, cfg, log) //nolint:wrapcheck // Wrapped by the caller.
}

func runCheck(ctx context.Context) error {
	log := logger.NewLogger(logLevel)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug("Configuration loaded successfully")

	r := newResolver(cfg, log)
	r.repoFlag = repoFlag
	if interactive {
		r.prompt = ui.NewRepositoryPrompter().AskRepository
	}

	c := &checker{
		log:          log,
		cfg:          cfg,
		resolver:     r,
		platformFlag: platformFlag,
		newClient:    newProviderClient,
	}
	return c.run(ctx)
}

func (c *checker) run(ctx context.Context) error {
	target, err := c.resolver.resolveTarget()
	if err != nil {
		return err
	}

	p, err := resolvePlatform(c.platformFlag, c.cfg, target)
	if err != nil {
		return err
	}
	applyServerURL(c.cfg, p, target.ServerURL)
	c.log.Debug(fmt.Sprintf("Target %s on %s", target.FullName(), p))

	client, err := c.newClient(p, c.cfg, c.log)
	if err != nil {
		return fmt.Errorf("failed to create %s client: %w", p, err)
	}

	validator := probe.New(c.log, probe.WithListOptions(platform.ListOptions{
		State:   c.cfg.Probe.State,
		PerPage: c.cfg.Probe.PerPage,
	}))
	if err := validator.Validate(ctx, client, target.Owner, target.Repo); err != nil {
		var missing *probe.MissingCapabilityError
		if errors.As(err, &missing) {
			return fmt.Errorf("%s client no longer supports %s: %w", client.PlatformName(), missing.Name, err)
		}
		return err //nolint:wrapcheck // Probe errors already carry context.
	}

	c.log.Debug("API surface check passed")
	return nil
}
