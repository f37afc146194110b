package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/receipt-stats/configs"
	"github.com/thirdweb-dev/receipt-stats/internal/env"
	customLogger "github.com/thirdweb-dev/receipt-stats/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "receipt-stats <inputFile> <outputFile>",
		Short: "Compute per-block receipt statistics from a compressed block archive",
		Long: "Streams a compressed JSON array of blocks and writes one row per block:\n" +
			"blockId,txCount,numLogs,numKeys,numDistinctKeys. The input may be a local\n" +
			"path or an s3://bucket/key location.",
		Args:              cobra.ExactArgs(2),
		PersistentPreRunE: initConfig,
		RunE:              RunReceiptStats,
	}
)

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("input-compression", "", "Input compression: auto, gzip, zstd, lz4 or none")
	rootCmd.PersistentFlags().Int("input-buffer-size", 0, "Read buffer size in bytes for the compressed input")
	rootCmd.PersistentFlags().String("input-s3-region", "", "AWS region for s3:// inputs")
	rootCmd.PersistentFlags().String("input-s3-endpoint", "", "Custom S3 endpoint for s3:// inputs")
	rootCmd.PersistentFlags().String("output-format", "", "Output format: csv or parquet")
	rootCmd.PersistentFlags().String("metrics-textfile", "", "Write run metrics to this file in Prometheus text format")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("input.compression", rootCmd.PersistentFlags().Lookup("input-compression"))
	viper.BindPFlag("input.bufferSize", rootCmd.PersistentFlags().Lookup("input-buffer-size"))
	viper.BindPFlag("input.s3.region", rootCmd.PersistentFlags().Lookup("input-s3-region"))
	viper.BindPFlag("input.s3.endpoint", rootCmd.PersistentFlags().Lookup("input-s3-endpoint"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output-format"))
	viper.BindPFlag("metrics.textfile", rootCmd.PersistentFlags().Lookup("metrics-textfile"))
}

func initConfig(cmd *cobra.Command, args []string) error {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		return err
	}
	customLogger.InitLogger()
	return nil
}
