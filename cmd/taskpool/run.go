package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/antonioclim/taskpool/internal/services"
	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/store/migrations"
	"github.com/antonioclim/taskpool/internal/util"
	"github.com/antonioclim/taskpool/internal/workloads"
	"github.com/antonioclim/taskpool/pkg/pool"
)

func newRunCommand() *cobra.Command {
	var (
		workload  string
		taskArgs  []int
		withRetry bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one batch of tasks and print the summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := store.NewDB(cfg.Store.DataFile)
			if err != nil {
				return err
			}
			if err := migrations.Run(cmd.Context(), db); err != nil {
				return err
			}
			st := store.NewStore(db)
			defer st.Close()

			p, err := pool.New[int, int64](cfg.Pool.NumWorkers, cfg.Pool.QueueSize,
				pool.WithLogger(zap.S()),
				pool.WithName("cli"),
			)
			if err != nil {
				return err
			}

			runner := services.NewRunnerService(p, st)
			run, err := runner.RunBatch(cmd.Context(), services.BatchParams{
				Workload: workload,
				Args:     taskArgs,
				Retry:    withRetry,
			})
			if err != nil {
				if shutdownErr := runner.Shutdown(); shutdownErr != nil {
					zap.S().Errorw("failed to shut down pool", "error", shutdownErr)
				}
				return err
			}

			fmt.Printf("run %s (%s)\n", run.ID, run.Workload)
			fmt.Printf("  tasks:     %d\n", run.Tasks)
			fmt.Printf("  completed: %s\n", color.GreenString("%d", run.Completed))
			if run.Failed > 0 {
				fmt.Printf("  failed:    %s\n", color.RedString("%d", run.Failed))
			}
			if run.Cancelled > 0 {
				fmt.Printf("  cancelled: %s\n", color.YellowString("%d", run.Cancelled))
			}
			fmt.Printf("  success:   %.2f%%\n", util.Percent(run.Completed, run.Tasks))
			fmt.Printf("  duration:  %s\n", run.Duration)

			return runner.Shutdown()
		},
	}

	cmd.Flags().StringVarP(&workload, "workload", "w", workloads.NameFactorial,
		fmt.Sprintf("workload to run (%s)", strings.Join(workloads.Names(), ", ")))
	cmd.Flags().IntSliceVarP(&taskArgs, "args", "a", []int{1, 2, 3, 4, 5, 6, 7, 8},
		"one task is submitted per argument")
	cmd.Flags().BoolVar(&withRetry, "retry", false, "resubmit tasks that end in an error")
	return cmd
}
