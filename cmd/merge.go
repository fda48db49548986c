package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repattern.dev/pkg/repattern/internal/domain"
	m "repattern.dev/pkg/repattern/internal/model"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [dirs...]",
		Short: "Merge sharded reports into a single directory",
		Long: `Merge report directories into the reports directory.

With no arguments the shard_* subdirectories of the reports directory are merged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))

			return currentWorkflow().Merge(cmd.Context(), domain.MergeArgs{
				Reports: reportsPath,
				Inputs:  parsePaths(args),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
