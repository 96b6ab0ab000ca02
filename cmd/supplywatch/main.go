package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkoide/supplywatch/internal/config"
	"github.com/tkoide/supplywatch/internal/fetch"
	"github.com/tkoide/supplywatch/internal/logging"
	"github.com/tkoide/supplywatch/internal/service"
	"github.com/tkoide/supplywatch/internal/view"
	"github.com/tkoide/supplywatch/internal/web"
	"github.com/tkoide/supplywatch/internal/web/templates"
)

var rootCmd = &cobra.Command{
	Use:   "supplywatch",
	Short: "Expiry dashboard for an emergency-supply inventory sheet",
	Long: `supplywatch fetches a published spreadsheet export of your emergency
supplies, classifies every item by how close it is to expiry, and serves a
dashboard with per-category filtering, sorting, and an urgent-items panel.

Configuration is taken from the environment; SHEET_URL points at the
published CSV export.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web dashboard",
	RunE:  runServe,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch the sheet once and print the expiry summary",
	Long: `check runs a single fetch-and-classify pass and prints the status
counts plus the urgent items to stdout. Exits non-zero when the sheet cannot
be fetched, which makes it usable from cron or a healthcheck.`,
	RunE: runCheck,
}

func main() {
	rootCmd.AddCommand(serveCmd, checkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	server := web.NewServer(newService(cfg, logger), templates.FS, loadIcons(cfg, logger), logger)
	return server.ListenAndServe(cfg.ListenAddr)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	svc := newService(cfg, logger)
	snap, err := svc.Refresh(context.Background())
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	vm := view.Build(snap.Items, view.FilterAll, view.SortExpiry)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "total %d: %d safe, %d soon, %d expired\n",
		vm.Summary.Total, vm.Summary.Safe, vm.Summary.Soon, vm.Summary.Expired)
	if snap.MalformedDates > 0 {
		fmt.Fprintf(out, "%d row(s) had unreadable expiry dates\n", snap.MalformedDates)
	}

	if len(vm.Urgent) == 0 {
		fmt.Fprintln(out, "no urgent items")
		return nil
	}
	fmt.Fprintln(out, "urgent:")
	for _, it := range vm.Urgent {
		fmt.Fprintf(out, "  %s (%s): %s\n", it.Record.Name(), it.Record.Category(), view.DaysLabel(it.Expiry))
	}
	return nil
}

func newService(cfg *config.Config, logger *slog.Logger) *service.InventoryService {
	if cfg.SheetURL == "" {
		logger.Warn("SHEET_URL is not set; the dashboard will show an empty inventory")
		return service.NewInventoryService(nil, logger)
	}
	return service.NewInventoryService(fetch.New(cfg.SheetURL, cfg.FetchTimeout), logger)
}

func loadIcons(cfg *config.Config, logger *slog.Logger) view.IconSet {
	if cfg.IconsPath == "" {
		return view.DefaultIcons()
	}
	icons, err := view.LoadIcons(cfg.IconsPath)
	if err != nil {
		logger.Warn("failed to load icon overrides, using defaults", "path", cfg.IconsPath, "error", err)
		return view.DefaultIcons()
	}
	return icons
}
