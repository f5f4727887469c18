package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devkit.dev/pkg/devkit/internal/domain"
	m "devkit.dev/pkg/devkit/internal/model"
)

const viewOperationFlagName = "operation"

func newViewCmd() *cobra.Command {
	var operation string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved reports",
		Long:  "View the reports saved by earlier runs in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := domain.ViewArgs{Reports: m.Path(viper.GetString(outputFlagName))}

			if operation != "" {
				op, err := m.ParseOperation(operation)
				if err != nil {
					return err
				}

				args.Operation = op
			}

			return workflow.View(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVar(&operation, viewOperationFlagName, "", "only show the report of this operation (scan, translate, stubs, normalize)")

	return cmd
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}
