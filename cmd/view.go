package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repattern.dev/pkg/repattern/internal/domain"
	m "repattern.dev/pkg/repattern/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated repair-pattern reports",
		Long:  "View previously generated repair-pattern reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return currentWorkflow().View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
