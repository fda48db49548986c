package cmd

import (
	"github.com/spf13/cobra"

	"repattern.dev/pkg/repattern/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [families...]",
		Short: "List pattern families and their repair patterns",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := domain.ParseFamilies(args)
			if err != nil {
				return err
			}

			return currentWorkflow().List(cmd.Context(), domain.ListArgs{Families: families})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
