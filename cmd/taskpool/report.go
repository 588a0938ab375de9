package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/antonioclim/taskpool/internal/services"
	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/store/migrations"
)

func newReportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the run history to an xlsx workbook",
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

			count, err := services.NewReportService(st).Export(cmd.Context(), output)
			if err != nil {
				return err
			}

			fmt.Printf("wrote %s runs to %s\n", color.GreenString("%d", count), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "runs.xlsx", "path of the workbook to write")
	return cmd
}
