package cmd

import (
	"context"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func Start() {
	cfg := newCfg("env")
	slog.SetLogLoggerLevel(slog.Level(cfg.GetInt("log.level")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{Use: "event-registration"}
	cmd := []*cobra.Command{
		{
			Use:   "serve-http",
			Short: "Run HTTP server",
			Run: func(cmd *cobra.Command, args []string) {
				runHttpServerCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:settlement",
			Short: "Run queue payment settlement server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueSettlementCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:notification",
			Short: "Run queue registration notification server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueNotificationCmd(ctx)
			},
		},
		{
			Use:   "serve-queue:email",
			Short: "Run queue email server",
			Run: func(cmd *cobra.Command, args []string) {
				runQueueEmailCmd(ctx)
			},
		},
		{
			Use:   "dev",
			Short: "Run every server in one process, for testing purpose",
			Run: func(cmd *cobra.Command, args []string) {
				var g errgroup.Group
				for _, run := range []func(context.Context){
					runHttpServerCmd,
					runQueueSettlementCmd,
					runQueueNotificationCmd,
					runQueueEmailCmd,
				} {
					g.Go(func() error {
						run(ctx)
						return nil
					})
				}
				_ = g.Wait()
			},
		},
	}

	rootCmd.AddCommand(cmd...)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
