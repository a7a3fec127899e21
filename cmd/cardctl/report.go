package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heyemlee/quicklink-app/internal/clock"
	"github.com/heyemlee/quicklink-app/internal/dto"
	"github.com/heyemlee/quicklink-app/internal/repository/eventstore"
	"github.com/heyemlee/quicklink-app/internal/repository/postgres"
	"github.com/heyemlee/quicklink-app/internal/service"
)

var (
	reportOwner  string
	reportYear   int
	reportMonth  int
	reportAll    bool
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an owner's analytics report",
	Long: `Build the same report the dashboard shows for one owner.

Without --year or --all the last 30 days are reported. --month is only
read together with --year.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(reportOutput); err != nil {
			return err
		}

		ctx := cmd.Context()

		pg, err := postgres.Open(ctx, cfg.Postgres, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		events, closeEvents, err := eventstore.Open(ctx, cfg, pg, log)
		if err != nil {
			return err
		}
		defer closeEvents()

		svc := service.NewAnalyticsService(events, pg, clock.System{}, cfg.Service.DefaultOwnerSlug, nil, log)

		report, err := svc.GetAnalyticsForSlug(ctx, reportOwner, reportQuery(reportYear, reportMonth, reportAll))
		if err != nil {
			return fmt.Errorf("building report for %q: %w", reportOwner, err)
		}

		return writeReport(cmd.OutOrStdout(), report, reportOutput)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOwner, "owner", "", "owner slug")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "calendar year")
	reportCmd.Flags().IntVar(&reportMonth, "month", 0, "month 1-12, requires --year")
	reportCmd.Flags().BoolVar(&reportAll, "all", false, "report all time")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", formatJSON, "output format (json or yaml)")
	_ = reportCmd.MarkFlagRequired("owner")
}

// reportQuery maps flags onto the dashboard's query parameters.
func reportQuery(year, month int, all bool) *dto.AnalyticsQuery {
	query := &dto.AnalyticsQuery{}
	if all {
		query.All = "true"
	}
	if year != 0 {
		query.Year = strconv.Itoa(year)
	}
	if month != 0 {
		query.Month = strconv.Itoa(month)
	}
	return query
}
