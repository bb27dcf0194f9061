package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"goldpost/internal/scheduler"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Publish the post on the SCHEDULE_CRON spec until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.With("package", "cmd")
		ctx := cmd.Context()

		loc, err := cnf.Post.Location()
		if err != nil {
			return err
		}

		publishPricesUC, err := newPublishPricesUsecase(nil)
		if err != nil {
			return err
		}

		sched := scheduler.New(ctx, logger, loc)
		sched.Add(cnf.Schedule.Cron, func(ctx context.Context) {
			log.Info("running price post")

			// A failed run waits for the next tick.
			if _, err := publishPricesUC.Run(ctx); err != nil {
				log.Error("failed to publish prices", "error", err)
			}
		})

		log.Info("starting scheduler", "cron", cnf.Schedule.Cron, "time_zone", loc.String())
		return sched.Start()
	},
}
