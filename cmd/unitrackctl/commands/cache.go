package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jra3/unitrack/internal/backendselect"
	"github.com/jra3/unitrack/internal/cache"
	"github.com/jra3/unitrack/internal/runtimeconfig"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and refresh the Context Cache",
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one refresh cycle against the configured backend and persist the snapshot",
	RunE:  runCacheRefresh,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheRefreshCmd)
}

func runCacheRefresh(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeconfig.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	t, meta, err := backendselect.New(cfg)
	if err != nil {
		return err
	}

	existing, err := cache.Load(cfg.Cache.Path)
	if err != nil {
		return fmt.Errorf("load existing cache: %w", err)
	}

	refresher := cache.NewRefresher(t, cfg.Cache.Path, cfg.Cache.RefreshInterval, meta)
	refresher.Cache().RecentIssues = existing.RecentIssues
	refresher.Cache().DefaultProject = existing.DefaultProject

	if err := refresher.RefreshNow(context.Background()); err != nil {
		return fmt.Errorf("refresh cache: %w", err)
	}

	snap := refresher.Cache()
	fmt.Printf("refreshed cache at %s: %s projects, %s tags, %s link types, %s workflow hints (snapshot taken %s, age %s)\n",
		cfg.Cache.Path,
		humanize.Comma(int64(len(snap.Projects))),
		humanize.Comma(int64(len(snap.Tags))),
		humanize.Comma(int64(len(snap.LinkTypes))),
		humanize.Comma(int64(len(snap.WorkflowHints))),
		humanize.Time(snap.UpdatedAt),
		snap.AgeString(time.Now()))
	return nil
}
