package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"repattern.dev/pkg/repattern/internal/domain"
	m "repattern.dev/pkg/repattern/internal/model"
)

var detectParallelFlag int
var parallelDetectorsFlag bool
var familyFlags []string
var metricsFileFlag string
var detectShardFlag string

// detectCmd represents the detect command.
var detectCmd = newDetectCmd()

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [paths...]",
		Short: "Detect repair patterns in change-sets",
		Long:  detectLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := domain.ParseFamilies(viper.GetStringSlice(familiesConfigKey))
			if err != nil {
				return err
			}

			shardIndex, totalShards := parseShardFlag(detectShardFlag)
			threads := max(viper.GetInt(detectParallelConfigKey), 1)

			return currentWorkflow().Detect(cmd.Context(), domain.DetectArgs{
				Paths:           parsePaths(args),
				Exclude:         viper.GetStringSlice(excludeConfigKey),
				Reports:         m.Path(viper.GetString(outputFlagName)),
				Threads:         uint(threads),
				Families:        families,
				MetricsFile:     m.Path(viper.GetString(metricsFileConfigKey)),
				ShardIndex:      uint(shardIndex),
				TotalShardCount: uint(totalShards),
			})
		},
	}

	configureDetectFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func configureDetectFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&detectParallelFlag, detectParallelFlagName, "p", viper.GetInt(detectParallelConfigKey), "number of change-sets analysed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(detectParallelFlagName), detectParallelConfigKey)

	cmd.Flags().BoolVar(&parallelDetectorsFlag, parallelDetectorsFlagName, viper.GetBool(parallelDetectorsConfigKey), "run the pattern families of one change-set concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelDetectorsFlagName), parallelDetectorsConfigKey)

	cmd.Flags().StringSliceVarP(&familyFlags, familyFlagName, "f", viper.GetStringSlice(familiesConfigKey), "pattern families to run (default: all)")
	bindFlagToConfig(cmd.Flags().Lookup(familyFlagName), familiesConfigKey)

	cmd.Flags().StringVar(&metricsFileFlag, metricsFileFlagName, viper.GetString(metricsFileConfigKey), "write Prometheus metrics in text format to this file")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), metricsFileConfigKey)

	cmd.Flags().StringVarP(&detectShardFlag, shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
