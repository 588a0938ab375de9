package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/antonioclim/taskpool/internal/handlers"
	"github.com/antonioclim/taskpool/internal/server"
	"github.com/antonioclim/taskpool/internal/services"
	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/store/migrations"
	"github.com/antonioclim/taskpool/pkg/pool"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP daemon exposing the run history and pool statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := zap.S().Named("serve")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := store.NewDB(cfg.Store.DataFile)
			if err != nil {
				return err
			}
			if err := migrations.Run(ctx, db); err != nil {
				return err
			}
			st := store.NewStore(db)
			defer st.Close()

			p, err := pool.New[int, int64](cfg.Pool.NumWorkers, cfg.Pool.QueueSize,
				pool.WithLogger(zap.S()),
				pool.WithName("server"),
			)
			if err != nil {
				return err
			}

			runner := services.NewRunnerService(p, st)
			srv := server.New(cfg.Server, handlers.New(runner, st))

			go func() {
				if err := srv.Start(); err != nil {
					log.Errorw("server stopped unexpectedly", "error", err)
					stop()
				}
			}()
			log.Infow("serving", "port", cfg.Server.HTTPPort, "workers", cfg.Pool.NumWorkers)

			<-ctx.Done()
			log.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Errorw("failed to stop server", "error", err)
			}
			return runner.Shutdown()
		},
	}
}
