package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/bluescout/internal/config"
)

var (
	watchInterval  float64
	watchImmediate bool
	watchOnce      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the hunt pipeline on an interval",
	Long: `Watch runs hunts on a fixed interval until interrupted. A failed
cycle is logged and the next one still runs, so a transient endpoint outage
does not kill a long-running watch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch()
	},
}

func init() {
	watchCmd.Flags().Float64VarP(&watchInterval, "interval", "i", 6, "Hours between hunt cycles")
	watchCmd.Flags().BoolVar(&watchImmediate, "immediate", true, "Run a cycle immediately on start")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "Run a single cycle and exit")
	rootCmd.AddCommand(watchCmd)
}

func runWatch() error {
	if watchInterval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", watchInterval)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(watchInterval * float64(time.Hour))

	runCycle := func() {
		start := time.Now()
		fmt.Fprintf(os.Stderr, "[%s] Starting hunt cycle\n", start.Format(time.RFC3339))
		if err := hunt(ctx, cfg); err != nil {
			if ctx.Err() != nil {
				return
			}
			fmt.Fprintf(os.Stderr, "Hunt cycle failed: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Cycle finished in %s\n", time.Since(start).Round(time.Second))
	}

	if watchImmediate || watchOnce {
		runCycle()
	}
	if watchOnce {
		return ctx.Err()
	}

	fmt.Fprintf(os.Stderr, "Watching: next cycle in %s (Ctrl-C to stop)\n", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "Watch stopped")
			return nil
		case <-ticker.C:
			runCycle()
		}
	}
}
