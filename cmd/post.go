package cmd

import (
	"github.com/spf13/cobra"

	"goldpost/internal/usecases"
)

var dryRun bool

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Fetch prices and publish the post once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var publisher usecases.Publisher
		if dryRun {
			publisher = printPublisher{w: cmd.OutOrStdout()}
		}

		publishPricesUC, err := newPublishPricesUsecase(publisher)
		if err != nil {
			return err
		}

		_, err = publishPricesUC.Run(cmd.Context())
		return err
	},
}

func init() {
	postCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the post to stdout instead of publishing it")
}
