package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/receipt-stats/configs"
	"github.com/thirdweb-dev/receipt-stats/internal/metrics"
	"github.com/thirdweb-dev/receipt-stats/internal/pipeline"
	"github.com/thirdweb-dev/receipt-stats/internal/sink"
	"github.com/thirdweb-dev/receipt-stats/internal/source"
)

func RunReceiptStats(cmd *cobra.Command, args []string) error {
	// usage is only useful for argument errors
	cmd.SilenceUsage = true

	inputPath, outputPath := args[0], args[1]
	err := runReceiptStats(cmd.Context(), inputPath, outputPath)
	if err != nil {
		log.Error().Stack().Err(err).Str("input", inputPath).Str("output", outputPath).Msg("Receipt stats run failed")
		metrics.RunSuccess.Set(0)
	} else {
		metrics.RunSuccess.Set(1)
	}

	if path := config.Cfg.Metrics.Textfile; path != "" {
		if metricsErr := metrics.WriteTextfile(path); metricsErr != nil {
			log.Error().Err(metricsErr).Str("path", path).Msg("Failed to write metrics textfile")
		}
	}
	return err
}

func runReceiptStats(ctx context.Context, inputPath string, outputPath string) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	input, err := source.Open(ctx, inputPath, &config.Cfg.Input)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := input.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("input", inputPath).Msg("Failed to close input")
		}
	}()

	output, err := sink.Create(outputPath, config.Cfg.Output.Format)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = errors.WithMessagef(closeErr, "output %s", outputPath)
		}
	}()

	summary, err := pipeline.Run(input, output)
	if err != nil {
		return errors.WithMessagef(err, "processed %d blocks before failure", summary.Blocks)
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		EmbedObject(summary).
		Msg("Receipt stats complete")
	return nil
}
