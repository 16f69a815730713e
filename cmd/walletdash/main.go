package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wallet-health/pkg/analysis"
	"github.com/wallet-health/pkg/config"
	"github.com/wallet-health/pkg/dashboard"
	"github.com/wallet-health/pkg/db"
	"github.com/wallet-health/pkg/render"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("walletdash failed")
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "walletdash",
		Short:         "Wallet health analysis dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(cfg.LogLevel)
			cmd.SetContext(context.WithValue(cmd.Context(), cfgKey{}, cfg))
			return nil
		},
	}
	root.AddCommand(serveCmd(), showCmd())
	return root
}

type cfgKey struct{}

func cfgFrom(cmd *cobra.Command) *config.Config {
	return cmd.Context().Value(cfgKey{}).(*config.Config)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cfgFrom(cmd)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func showCmd() *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:   "show [address]",
		Short: "Print a wallet analysis to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := analysis.Route{Path: "/analysis/"}
			if demo {
				rt.Path = analysis.DemoPath
			} else if len(args) == 1 {
				rt.Path += args[0]
				rt.Address = &args[0]
			}
			return render.View(cmd.OutOrStdout(), analysis.Resolve(rt))
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "show the demo wallet")
	return cmd
}

func serve(parent context.Context, cfg *config.Config) error {
	log.Info().Msg("👛 Wallet Health dashboard starting...")

	store, err := db.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := newPruner(store, cfg)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.Start()
		<-ctx.Done()
		<-c.Stop().Done()
		return nil
	})
	dash := dashboard.New(store, cfg, cfg.DashboardPort)
	g.Go(func() error { return dash.Run(ctx) })

	printSummary(cfg, store)

	err = g.Wait()
	log.Info().Msg("goodbye 👋")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newPruner schedules history pruning. The returned cron is not started.
func newPruner(store *db.Store, cfg *config.Config) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(cfg.PruneSchedule, func() { prune(store, cfg.LookupRetention) }); err != nil {
		return nil, fmt.Errorf("prune schedule %q: %w", cfg.PruneSchedule, err)
	}
	return c, nil
}

func prune(store *db.Store, retention time.Duration) {
	n, err := store.PruneBefore(time.Now().Add(-retention))
	if err != nil {
		log.Error().Err(err).Msg("prune failed")
		return
	}
	if n > 0 {
		log.Info().Int64("rows", n).Msg("🧹 pruned lookups")
	}
}

func printSummary(cfg *config.Config, store *db.Store) {
	stats, _ := store.GetStats()
	head := color.New(color.FgHiMagenta, color.Bold)
	fmt.Println("\n" + strings.Repeat("═", 60))
	head.Println("  👛 WALLET HEALTH DASHBOARD - RUNNING")
	fmt.Println(strings.Repeat("═", 60))
	fmt.Printf("  Dashboard: http://localhost:%d\n", cfg.DashboardPort)
	fmt.Printf("  Demo:      http://localhost:%d%s\n", cfg.DashboardPort, analysis.DemoPath)
	fmt.Printf("  Retention: %s (prune %s)\n", cfg.LookupRetention, cfg.PruneSchedule)
	if stats != nil {
		fmt.Printf("  DB: %d lookups, %d wallets\n", stats["lookups"], stats["wallets"])
	}
	fmt.Println(strings.Repeat("═", 60) + "\n")
}
